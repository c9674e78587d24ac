package sugar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corepay/srcpasskeys/pkg/options"
	"github.com/corepay/srcpasskeys/pkg/passkeys"
	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

type staticSDK struct{}

func (staticSDK) Authenticate(_ context.Context, payload *srctypes.AuthenticationPayload) (*srctypes.AuthenticationResponse, error) {
	return &srctypes.AuthenticationResponse{
		Status:           srctypes.AuthenticationStatusAuthenticated,
		SRCCorrelationID: payload.SRCCorrelationID,
	}, nil
}

func TestExecuteAuthenticate(t *testing.T) {
	core := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"serviceId":"svc-1","srcClientId":"client-1","srcDigitalCardId":"dcard-1"}`))
	}))
	defer core.Close()

	result, err := ExecuteAuthenticate(context.Background(),
		passkeys.AuthRequestParams{
			ManagerCode:  "azul",
			MerchantCode: "m-1",
			TokenCode:    "t-1",
			Method:       passkeys.AuthMethod3DS,
			Reason:       passkeys.AuthReasonLogin,
			Amount:       &passkeys.Amount{Value: 10, Currency: "USD"},
		},
		options.WithCoreBaseURL(core.URL),
		options.WithSDK(staticSDK{}),
	)
	require.NoError(t, err)
	assert.Equal(t, srctypes.AuthenticationStatusAuthenticated, result.Status)
	assert.NotEmpty(t, result.SRCCorrelationID)
}
