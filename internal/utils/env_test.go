package utils

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("REGISTRAR_TEST_STR", "value")
	if got := GetEnv("REGISTRAR_TEST_STR", "fallback", nil); got != "value" {
		t.Fatalf("GetEnv: got %q", got)
	}
	if got := GetEnv("REGISTRAR_TEST_MISSING", "fallback", nil); got != "fallback" {
		t.Fatalf("GetEnv default: got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("REGISTRAR_TEST_INT", " 42 ")
	if got := GetEnvAsInt("REGISTRAR_TEST_INT", 1, nil); got != 42 {
		t.Fatalf("GetEnvAsInt: got %d", got)
	}
	t.Setenv("REGISTRAR_TEST_INT", "forty")
	if got := GetEnvAsInt("REGISTRAR_TEST_INT", 1, nil); got != 1 {
		t.Fatalf("GetEnvAsInt unparsable: got %d", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	cases := map[string]bool{"true": true, "ON": true, "1": true, "no": false, "0": false}
	for raw, want := range cases {
		t.Setenv("REGISTRAR_TEST_BOOL", raw)
		if got := GetEnvAsBool("REGISTRAR_TEST_BOOL", !want, nil); got != want {
			t.Fatalf("GetEnvAsBool(%q): want=%v got=%v", raw, want, got)
		}
	}
	t.Setenv("REGISTRAR_TEST_BOOL", "maybe")
	if got := GetEnvAsBool("REGISTRAR_TEST_BOOL", true, nil); !got {
		t.Fatalf("unparsable bool must fall back")
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("REGISTRAR_TEST_FLOAT", "0.25")
	if got := GetEnvAsFloat("REGISTRAR_TEST_FLOAT", 1, nil); got != 0.25 {
		t.Fatalf("GetEnvAsFloat: got %v", got)
	}
}

func TestPrintableRedactsSecrets(t *testing.T) {
	if got := printable("POSTGRES_PASSWORD", "hunter2"); got != "[REDACTED]" {
		t.Fatalf("password leaked: %q", got)
	}
	if got := printable("POSTGRES_HOST", "db"); got != "db" {
		t.Fatalf("host: %q", got)
	}
}
