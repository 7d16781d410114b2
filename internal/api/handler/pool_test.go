package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramContext(name, value string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func TestParamID(t *testing.T) {
	id, err := paramID(paramContext("pool", "42"), "pool")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	cases := []string{"", "abc", "0", "-7", "9999999999999999999999"}
	for _, value := range cases {
		_, err := paramID(paramContext("user", value), "user")
		assert.Error(t, err, "value %q", value)
	}

	// the error names the parameter that was malformed, not some other entity
	_, err = paramID(paramContext("user", "abc"), "user")
	assert.NotContains(t, err.Error(), "pool")
}
