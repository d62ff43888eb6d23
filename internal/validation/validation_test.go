package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRepo(t *testing.T) {
	tests := []struct {
		name    string
		repo    string
		wantErr bool
	}{
		{name: "valid", repo: "octocat/notes", wantErr: false},
		{name: "valid with dots", repo: "my-org/notes.backup_2024", wantErr: false},
		{name: "empty", repo: "", wantErr: true},
		{name: "no slash", repo: "notes", wantErr: true},
		{name: "two slashes", repo: "a/b/c", wantErr: true},
		{name: "owner starts with dash", repo: "-octo/notes", wantErr: true},
		{name: "reserved name", repo: "octocat/..", wantErr: true},
		{name: "spaces", repo: "octo cat/notes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepo(tt.repo)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "simple", path: "2024/03/notes.md", wantErr: false},
		{name: "unicode", path: "chats/2024/03/привет-1234abcd.md", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "leading slash", path: "/etc/passwd", wantErr: true},
		{name: "trailing slash", path: "2024/03/", wantErr: true},
		{name: "double slash", path: "2024//notes.md", wantErr: true},
		{name: "dot dot", path: "2024/../notes.md", wantErr: true},
		{name: "control char", path: "2024/03/a\x01b.md", wantErr: true},
		{name: "too long", path: strings.Repeat("a", MaxPathLen+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("admin"))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername(strings.Repeat("a", MaxUsernameLen+1)))
	assert.Error(t, ValidateUsername("admin!"))
}
