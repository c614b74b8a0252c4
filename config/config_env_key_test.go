package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"identity": map[string]any{
			"appKey": "key",
			"baseUrl": map[string]any{
				"oapi": "",
			},
		},
		"jwt": map[string]any{
			"expirationMinutes": 15,
		},
		"files": map[string]any{
			"baseDir": "files",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "IDENTITY_APPKEY", want: "identity.appKey"},
		{envKey: "IDENTITY_BASEURL_OAPI", want: "identity.baseUrl.oapi"},
		{envKey: "JWT_EXPIRATIONMINUTES", want: "jwt.expirationMinutes"},
		{envKey: "FILES_BASEDIR", want: "files.baseDir"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
