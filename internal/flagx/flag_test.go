package flagx

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate value", []string{"-c", "conf.json", "-dsn", "bank.db"}, []string{"-c", "-config"}, []string{"-c", "conf.json"}},
		{"equals form", []string{"-config=alt.json", "-dsn", "bank.db"}, []string{"-c", "-config"}, []string{"-config=alt.json"}},
		{"order preserved", []string{"-config=a.json", "-c", "b.json", "-l", "debug"}, []string{"-c", "-config"}, []string{"-config=a.json", "-c", "b.json"}},
		{"nothing allowed matches", []string{"-x", "1", "-y=2", "positional"}, []string{"-c"}, []string{}},
		{"trailing flag without value", []string{"-c"}, []string{"-c"}, []string{"-c"}},
		{"next token is a flag", []string{"-c", "-d"}, []string{"-c"}, []string{"-c"}},
		{"equals value starting with dash", []string{"-e=-weird.env"}, []string{"-e"}, []string{"-e=-weird.env"}},
		{"several flags kept", []string{"-d", "sqlite", "-e", ".env", "-i", "2s"}, []string{"-d", "-e"}, []string{"-d", "sqlite", "-e", ".env"}},
		{"repeated flag", []string{"-c", "one.json", "-c", "two.json"}, []string{"-c"}, []string{"-c", "one.json", "-c", "two.json"}},
		{"empty", []string{}, []string{"-c"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"gophbank"}, args...)
}

func TestJsonConfigFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/bank.json"}, "/etc/bank.json"},
		{"long", []string{"-config", "/etc/bank.json"}, "/etc/bank.json"},
		{"equals", []string{"-config=/etc/bank.json", "-d", "sqlite"}, "/etc/bank.json"},
		{"last wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
		{"absent", []string{"-d", "sqlite", "-dsn", "bank.db"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}

func TestEnvFileFlag(t *testing.T) {
	withArgs(t, "-c", "conf.json", "-e", "/path/.env")
	assert.Equal(t, "/path/.env", EnvFileFlag())

	withArgs(t, "-env-file=/other/.env")
	assert.Equal(t, "/other/.env", EnvFileFlag())

	withArgs(t, "-c", "conf.json")
	assert.Empty(t, EnvFileFlag())
}
