package rules

import "github.com/Sena-ops/impactguard/internal/model"

// defaultRules é o conjunto embutido usado quando não há arquivo de
// configuração. A ordem aqui é a ordem das evidências no relatório.
var defaultRules = []Rule{
	{
		Name:           "database_migrations",
		Paths:          []string{"migrations/versions/**/*.py", "db/migrate/**/*.rb"},
		Severity:       model.SevHigh,
		Description:    "Database migration detected",
		Recommendation: "Review migration for target environment compatibility and timing requirements",
	},
	{
		Name:           "clowdapp_config",
		Paths:          []string{"deploy/clowdapp.yml", "deploy/*.yml"},
		Severity:       model.SevHigh,
		Description:    "ClowdApp configuration change",
		Recommendation: "Verify all changes are compatible with the target environment",
	},
	{
		Name:            "kessel_integration",
		Paths:           []string{"**/*kessel*"},
		ContentPatterns: []string{"kessel", "KESSEL"},
		Severity:        model.SevCritical,
		Description:     "Kessel integration change",
		Recommendation:  "Kessel may not be available in the target environment. Ensure feature flags and bypass options are configured.",
	},
	{
		Name: "aws_s3",
		ContentPatterns: []string{
			`S3.*bucket`,
			`aws.*s3`,
			`s3\.(get|put|delete|list)`,
			`boto3.*s3`,
			`S3_.*BUCKET`,
		},
		Severity:       model.SevHigh,
		Description:    "AWS S3 integration change",
		Recommendation: "Verify S3 bucket configuration for the target region and permissions",
	},
	{
		Name: "aws_rds",
		ContentPatterns: []string{
			`RDS`,
			`aws.*rds`,
			`aurora`,
			`database.*endpoint`,
			`DB_HOST.*amazonaws`,
		},
		Severity:       model.SevHigh,
		Description:    "AWS RDS configuration change",
		Recommendation: "Ensure RDS endpoints and credentials are configured for the target environment",
	},
	{
		Name: "aws_elasticache",
		ContentPatterns: []string{
			`elasticache`,
			`redis.*amazonaws`,
			`cache\..*\.amazonaws`,
		},
		Severity:       model.SevMedium,
		Description:    "AWS ElastiCache configuration change",
		Recommendation: "Verify ElastiCache endpoints for target environment compatibility",
	},
	{
		Name: "secrets_management",
		ContentPatterns: []string{
			`secretRef`,
			`secretName:`,
			`secret.*key`,
			`AWS.*SECRET`,
		},
		Severity:       model.SevMedium,
		Description:    "Secrets configuration change",
		Recommendation: "Ensure secrets are available in the target environment secret store",
	},
	{
		Name: "kafka_topics",
		ContentPatterns: []string{
			`topicName:`,
			`KAFKA.*TOPIC`,
			`kafkaTopics:`,
		},
		Severity:       model.SevMedium,
		Description:    "Kafka topic configuration change",
		Recommendation: "New topics may need to be created in the target Kafka cluster",
	},
	{
		Name: "external_dependencies",
		ContentPatterns: []string{
			`dependencies:`,
			`http://`,
			`https://(?!github\.com)`,
		},
		Severity:       model.SevLow,
		Description:    "External dependency change",
		Recommendation: "Verify external endpoints are accessible from the target environment",
	},
	{
		Name: "environment_config",
		ContentPatterns: []string{
			`ENV_NAME`,
			`ENVIRONMENT`,
			`production.*config`,
			`stage.*config`,
		},
		Severity:       model.SevLow,
		Description:    "Environment configuration change detected",
		Recommendation: "Review environment-specific settings before promoting the change.",
	},
	{
		Name: "feature_flags",
		ContentPatterns: []string{
			`UNLEASH`,
			`feature.*flag`,
			`BYPASS_`,
			`ENABLE_.*FEATURE`,
		},
		Severity:       model.SevLow,
		Description:    "Feature flag change detected",
		Recommendation: "Verify feature flags are properly configured. Test bypass options for services not available in the target environment.",
	},
}

// Default compila o conjunto embutido. Panica só se o embutido estiver
// quebrado, o que é bug de programação, não erro de execução.
func Default() *Set {
	set, err := Compile(defaultRules)
	if err != nil {
		panic("conjunto de regras embutido inválido: " + err.Error())
	}
	return set
}
