package config

import (
	"regexp"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/api"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/file"
	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

var oauthBearerRegex = regexp.MustCompile(`^[-a-zA-Z0-9._~+/]+=*$`)

// Keys of environment variables.
const (
	TokenKey     string = "CLOUDFLARE_API_TOKEN"
	TokenFileKey string = "CLOUDFLARE_API_TOKEN_FILE"
)

func readAuthTokenFile(ppfmt pp.PP, key string) (string, bool) {
	tokenFile := Getenv(key)
	if tokenFile == "" {
		return "", true
	}

	token, ok := file.ReadString(ppfmt, tokenFile)
	if !ok {
		return "", false
	}

	if token == "" {
		ppfmt.Noticef(pp.EmojiUserError, "The file specified by %s does not contain an API token", key)
		return "", false
	}

	return token, true
}

func readAuthToken(ppfmt pp.PP) (string, bool) {
	tokenPlain := Getenv(TokenKey)

	// foolproof check: the sample value in README
	if tokenPlain == "YOUR-CLOUDFLARE-API-TOKEN" {
		ppfmt.Noticef(pp.EmojiUserError, "You need to provide a real API token as %s", TokenKey)
		return "", false
	}

	tokenFile, ok := readAuthTokenFile(ppfmt, TokenFileKey)
	if !ok {
		return "", false
	}

	var token string
	switch {
	case tokenPlain != "" && tokenFile != "" && tokenPlain != tokenFile:
		ppfmt.Noticef(pp.EmojiUserError,
			"The value of %s does not match the token found in the file specified by %s; they must specify the same token",
			TokenKey, TokenFileKey)
		return "", false
	case tokenPlain != "":
		token = tokenPlain
	case tokenFile != "":
		token = tokenFile
	default:
		ppfmt.Noticef(pp.EmojiUserError, "Needs either %s or %s", TokenKey, TokenFileKey)
		return "", false
	}

	if !oauthBearerRegex.MatchString(token) {
		ppfmt.Hintf(pp.HintTokenFormat,
			"The API token appears to be invalid; it does not follow the OAuth2 bearer token format")
	}

	return token, true
}

// ReadAuth reads the environment variables CLOUDFLARE_API_TOKEN and
// CLOUDFLARE_API_TOKEN_FILE and creates an [api.CloudflareAuth].
func ReadAuth(ppfmt pp.PP, field *api.Auth) bool {
	token, ok := readAuthToken(ppfmt)
	if !ok {
		return false
	}

	*field = &api.CloudflareAuth{Token: token, BaseURL: ""}
	return true
}
