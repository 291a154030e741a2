package adapter

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConsoleLine(t *testing.T) {
	msg, isError, ok := ParseConsoleLine(`[1019/101010.123:INFO:CONSOLE(12)] "[PASS] Foo.Bar", source: http://127.0.0.1:1234/main.js (12)`)
	require.True(t, ok)
	assert.False(t, isError)
	assert.Equal(t, "[PASS] Foo.Bar", msg)

	msg, isError, ok = ParseConsoleLine(`[1019/101010.123:ERROR:CONSOLE(3)] "boom \"quoted\"", source: x.js (3)`)
	require.True(t, ok)
	assert.True(t, isError)
	assert.Equal(t, `boom "quoted"`, msg)

	_, _, ok = ParseConsoleLine("[1019/101010.123:INFO:gpu_init.cc(1)] something")
	assert.False(t, ok)
}

func TestStaticServer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o640))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.wasm"), []byte{0, 'a', 's', 'm'}, 0o640))

	srv, err := StartStaticServer(dir)
	require.NoError(t, err)

	resp, err := http.Get(srv.URL() + "app.wasm")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/wasm", resp.Header.Get("Content-Type"))
	assert.Equal(t, []byte{0, 'a', 's', 'm'}, body)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Close(ctx))
	require.NoError(t, srv.Close(ctx))
}
