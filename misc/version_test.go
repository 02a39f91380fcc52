package misc

import "testing"

func TestGetAppName(t *testing.T) {
	if GetAppName() == "" {
		t.Error("app name should never be empty")
	}

	saved := appName
	defer func() { appName = saved }()
	appName = "skin"
	if got := GetAppName(); got != "skin" {
		t.Errorf("GetAppName() = %q, want %q", got, "skin")
	}
}

func TestGetGitHash(t *testing.T) {
	saved := gitHash
	defer func() { gitHash = saved }()

	gitHash = "abc123"
	if got := GetGitHash(); got != "abc123" {
		t.Errorf("GetGitHash() = %q, want %q", got, "abc123")
	}
	gitHash = ""
	if GetGitHash() == "" {
		t.Error("hash should never be empty")
	}
}
