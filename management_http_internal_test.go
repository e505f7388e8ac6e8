package hyperstats

import (
	"testing"
	"time"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/hyperstats/internal/constants"
)

func TestNewManagementHTTPServer_Timeouts(t *testing.T) {
	srv := NewManagementHTTPServer("127.0.0.1:0")
	assert.Equal(t, constants.DefaultMgmtReadTimeout, srv.app.Config().ReadTimeout)
	assert.Equal(t, constants.DefaultMgmtWriteTimeout, srv.app.Config().WriteTimeout)

	srv = NewManagementHTTPServer("127.0.0.1:0",
		WithMgmtReadTimeout(2*time.Second),
		WithMgmtWriteTimeout(3*time.Second),
	)
	assert.Equal(t, 2*time.Second, srv.readTimeout)
	assert.Equal(t, 2*time.Second, srv.app.Config().ReadTimeout)
	assert.Equal(t, 3*time.Second, srv.app.Config().WriteTimeout)
}
