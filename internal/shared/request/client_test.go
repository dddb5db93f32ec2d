package request_test

import (
	"testing"

	"freshbit/internal/shared/request"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	cases := []struct {
		name      string
		header    string
		userAgent string
		want      request.ClientType
	}{
		{"explicit web header", "web", "", request.ClientWeb},
		{"explicit mobile header", "MOBILE", "Mozilla/5.0", request.ClientMobile},
		{"browser user agent", "", "Mozilla/5.0 (X11; Linux x86_64) Chrome/120", request.ClientWeb},
		{"cli user agent", "", "curl/8.4.0", request.ClientAPI},
		{"unknown header falls back to ua", "desktop", "Go-http-client/1.1", request.ClientAPI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, request.ResolveClientType(tc.header, tc.userAgent))
		})
	}

	assert.True(t, request.IsWebClient(request.ClientWeb))
	assert.False(t, request.IsWebClient(request.ClientAPI))
}
