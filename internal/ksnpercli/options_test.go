package ksnpercli

import (
	"strings"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	return ParseArgs(NewFlagSet("ksnper"), argv)
}

func TestParseDefaults(t *testing.T) {
	o, err := parse(t, "-k", "5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.VCF != "-" || o.K != 5 || o.Dialect != "unix" || o.Gzip || o.Summary {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestParseFull(t *testing.T) {
	o, err := parse(t,
		"-k", "21",
		"-r", "ref.fa",
		"-d", "excel",
		"-z",
		"--summary",
		"-o", "report.csv",
		"calls.vcf.gz",
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.VCF != "calls.vcf.gz" || o.K != 21 || o.Reference != "ref.fa" {
		t.Fatalf("unexpected options: %+v", o)
	}
	if o.Dialect != "excel" || !o.Gzip || !o.Summary || o.Output != "report.csv" {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		want string
	}{
		{"missing-k", []string{"calls.vcf"}, "-k"},
		{"zero-k", []string{"-k", "0"}, "-k"},
		{"negative-k", []string{"-k", "-3"}, "-k"},
		{"bad-dialect", []string{"-k", "3", "-d", "tsv"}, "dialect"},
		{"two-vcfs", []string{"-k", "3", "a.vcf", "b.vcf"}, "at most one"},
	}
	for _, c := range cases {
		_, err := parse(t, c.argv...)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.want)
		}
	}
}
