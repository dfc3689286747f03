package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Send(t *testing.T) {
	var got map[string]any
	var path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Transaction will be added to Block 2","index":2}`))
	}))
	defer srv.Close()

	t.Log("Given the need to send a transaction from the command line.")
	{
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"send", "--url", srv.URL, "--from", "alice", "--to", "bob", "--amount", "5"})

		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("\t%s\tShould be able to send the transaction : %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to send the transaction.", success)

		if path != "/transactions/new" {
			t.Fatalf("\t%s\tShould post to the transaction route : %s", failed, path)
		}
		t.Logf("\t%s\tShould post to the transaction route.", success)

		if got["sender"] != "alice" || got["recipient"] != "bob" || got["amount"] != 5.0 {
			t.Fatalf("\t%s\tShould send the transaction fields : %v", failed, got)
		}
		t.Logf("\t%s\tShould send the transaction fields.", success)

		if !strings.Contains(out.String(), "Block 2") {
			t.Fatalf("\t%s\tShould print the node's response : %s", failed, out.String())
		}
		t.Logf("\t%s\tShould print the node's response.", success)
	}
}

func Test_NodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"data validation error"}`))
	}))
	defer srv.Close()

	t.Log("Given the need to surface an error from the node.")
	{
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs([]string{"register", "--url", srv.URL, "http://"})

		err := rootCmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "status 400") {
			t.Fatalf("\t%s\tShould return the node's status : %v", failed, err)
		}
		t.Logf("\t%s\tShould return the node's status.", success)
	}
}
