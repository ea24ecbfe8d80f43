package parser

import "testing"

func TestAdditionsDoisHunks(t *testing.T) {
	diff := `diff --git a/app.py b/app.py
index 111..222 100644
--- a/app.py
+++ b/app.py
@@ -1,2 +1,3 @@
 primeira
+segunda adicionada
 terceira
@@ -10,1 +11,2 @@
 decima
+decima segunda adicionada
`

	adds := Additions(diff)
	if len(adds) != 2 {
		t.Fatalf("esperado 2 adições, obtido %d", len(adds))
	}
	if adds[0].Line != 2 || adds[0].Text != "segunda adicionada" {
		t.Errorf("esperado (segunda adicionada, 2), obtido (%s, %d)", adds[0].Text, adds[0].Line)
	}
	if adds[1].Line != 12 || adds[1].Text != "decima segunda adicionada" {
		t.Errorf("esperado (decima segunda adicionada, 12), obtido (%s, %d)", adds[1].Text, adds[1].Line)
	}
}

func TestAdditionsSemHunk(t *testing.T) {
	// aviso de arquivo binário não tem hunk nem adições
	diff := `diff --git a/logo.png b/logo.png
Binary files a/logo.png and b/logo.png differ
`
	if adds := Additions(diff); len(adds) != 0 {
		t.Errorf("esperado vazio, obtido %d adições", len(adds))
	}
}

func TestAdditionsVazio(t *testing.T) {
	if adds := Additions(""); len(adds) != 0 {
		t.Errorf("esperado vazio, obtido %d adições", len(adds))
	}
}

func TestAdditionsIgnoraRemocoes(t *testing.T) {
	diff := `--- a/f.txt
+++ b/f.txt
@@ -1,3 +1,2 @@
 contexto
-removida com kessel
+adicionada
`

	adds := Additions(diff)
	if len(adds) != 1 {
		t.Fatalf("esperado 1 adição, obtido %d", len(adds))
	}
	// remoção não avança o cursor do arquivo novo
	if adds[0].Line != 2 || adds[0].Text != "adicionada" {
		t.Errorf("esperado (adicionada, 2), obtido (%s, %d)", adds[0].Text, adds[0].Line)
	}
}

func TestAdditionsAdjacentes(t *testing.T) {
	diff := `@@ -1,0 +1,3 @@
+um
+dois
+tres
\ No newline at end of file
`

	adds := Additions(diff)
	if len(adds) != 3 {
		t.Fatalf("esperado 3 adições, obtido %d", len(adds))
	}
	for i, want := range []int{1, 2, 3} {
		if adds[i].Line != want {
			t.Errorf("adição %d: esperado linha %d, obtido %d", i, want, adds[i].Line)
		}
	}
}

func TestAdditionsHunkComContexto(t *testing.T) {
	// cabeçalho com contagem omitida: @@ -3 +5 @@
	diff := `@@ -3 +5 @@
 contexto
+nova
`

	adds := Additions(diff)
	if len(adds) != 1 {
		t.Fatalf("esperado 1 adição, obtido %d", len(adds))
	}
	if adds[0].Line != 6 {
		t.Errorf("esperado linha 6, obtido %d", adds[0].Line)
	}
}
