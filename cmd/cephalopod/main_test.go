package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunPrintsOneLine(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{"memo", nil, "20\n0 6 0\n2 2 2\n1 6 1\n", "322444322\n"},
		{"parallel", []string{"-engine", "parallel", "-workers", "2"}, "20\r\n0 6 0\r\n2 2 2\r\n1 6 1\r\n", "322444322\n"},
		{"terminal", []string{"-log-level", "debug"}, "0\n1 2 3\n4 5 6\n1 2 3\n", "123456123\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, strings.NewReader(tc.input), &stdout, &stderr); code != 0 {
				t.Fatalf("exit %d, stderr: %s", code, stderr.String())
			}
			if stdout.String() != tc.want {
				t.Fatalf("stdout = %q want %q", stdout.String(), tc.want)
			}
		})
	}
}

func TestRunFailsBeforeSearch(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		input string
		code  int
		log   string
	}{
		{"missing line", nil, "3\n0 0 0\n", 1, "missing input line"},
		{"bad integer", nil, "x\n0 0 0\n0 0 0\n0 0 0\n", 1, "unparsable integer"},
		{"field count", nil, "3\n0 0\n0 0 0\n0 0 0\n", 1, "wrong field count"},
		{"cell out of range", nil, "3\n0 7 0\n0 0 0\n0 0 0\n", 1, "invalid problem"},
		{"unknown engine", []string{"-engine", "quantum"}, "", 2, "unknown engine"},
		{"bad flag", []string{"-nope"}, "", 2, "nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, strings.NewReader(tc.input), &stdout, &stderr); code != tc.code {
				t.Fatalf("exit %d want %d, stderr: %s", code, tc.code, stderr.String())
			}
			if stdout.Len() != 0 {
				t.Fatalf("stdout must stay empty on failure, got %q", stdout.String())
			}
			if !strings.Contains(stderr.String(), tc.log) {
				t.Fatalf("stderr %q does not mention %q", stderr.String(), tc.log)
			}
		})
	}
}
