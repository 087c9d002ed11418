package conf

import (
	"reflect"
	"testing"
)

type testTLS struct {
	Certificate string `conf:"certificate"`
	Key         string `conf:"certificate_key"`
}

type testServer struct {
	Listen  string   `conf:"listen"`
	Root    string
	Methods []string `conf:"allowed_methods"`
	Gzip    bool     `conf:"gzip"`
	Workers int      `conf:"workers"`
	TLS     testTLS  `conf:"tls"`
}

var testApply = []struct {
	data string
	want testServer
}{
	{
		data: "listen 8080; root /srv/www;",
		want: testServer{Listen: "8080", Root: "/srv/www"},
	},
	{
		data: "allowed_methods GET POST DELETE;",
		want: testServer{Methods: []string{"GET", "POST", "DELETE"}},
	},
	{
		data: "gzip true; workers 8;",
		want: testServer{Gzip: true, Workers: 8},
	},
	{
		data: "tls { certificate /etc/ssl/cert.pem; certificate_key /etc/ssl/key.pem; }",
		want: testServer{TLS: testTLS{Certificate: "/etc/ssl/cert.pem", Key: "/etc/ssl/key.pem"}},
	},
}

func TestApply(t *testing.T) {
	for i, test := range testApply {
		block, err := Parse(test.data)
		if err != nil {
			t.Errorf("test %d: parse failed: %v", i, err)
			continue
		}

		var srv testServer
		if err := Apply(block, "conf", &srv); err != nil {
			t.Errorf("test %d: apply failed: %v", i, err)
			continue
		}

		if !reflect.DeepEqual(test.want, srv) {
			t.Errorf("test %d: want %#v, got %#v", i, test.want, srv)
		}
	}
}

var testApplyErrors = []string{
	"unknown yes;",        // no matching field
	"listen { port 80; }", // block for a scalar field
	"workers 1 2;",        // wrong argument count
	"workers many;",       // not a number
	"gzip maybe;",         // not a bool
}

func TestApplyErrors(t *testing.T) {
	for i, data := range testApplyErrors {
		block, err := Parse(data)
		if err != nil {
			t.Fatalf("test %d: parse failed: %v", i, err)
		}

		var srv testServer
		if err := Apply(block, "conf", &srv); err == nil {
			t.Errorf("test %d: expected error for %q", i, data)
		}
	}
}

func TestApplyNotPointer(t *testing.T) {
	if err := Apply(Block{}, "conf", testServer{}); err == nil {
		t.Error("expected error for non-pointer target")
	}
}
