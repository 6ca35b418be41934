package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productRequest struct {
	Name  string                          `json:"productName" validate:"required"`
	Price domain.Optional[domain.FlexInt] `json:"price"       validate:"present"`
	Stock domain.Optional[domain.FlexInt] `json:"stock"`
	Note  string                          `json:"note"        validate:"omitempty,max=5"`
}

func decode(t *testing.T, body string) (productRequest, error) {
	t.Helper()
	var req productRequest
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	err := DecodeJSON(httptest.NewRecorder(), r, &req)
	return req, err
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantMissing []string
		wantErr     bool
	}{
		{name: "complete", body: `{"productName":"Lamp","price":10}`},
		{name: "zero price is present", body: `{"productName":"Lamp","price":0}`},
		{name: "string price", body: `{"productName":"Lamp","price":"10"}`},
		{name: "null price", body: `{"productName":"Lamp","price":null}`, wantMissing: []string{"price"}},
		{name: "empty price", body: `{"productName":"Lamp","price":""}`, wantMissing: []string{"price"}},
		{name: "nothing", body: `{}`, wantMissing: []string{"productName", "price"}},
		{name: "empty body", body: ``, wantMissing: []string{"productName", "price"}},
		{name: "other rule", body: `{"productName":"Lamp","price":1,"note":"too long"}`, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req, err := decode(t, tc.body)
			require.NoError(t, err)

			err = ValidateRequest(&req)
			switch {
			case tc.wantMissing != nil:
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.wantMissing, verr.Fields)
				assert.Equal(t, "Missing required fields: "+strings.Join(tc.wantMissing, ", "), verr.Message)
			case tc.wantErr:
				assert.ErrorIs(t, err, domain.ErrValidation)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	t.Parallel()

	_, err := decode(t, `{"productName":`)
	assert.ErrorIs(t, err, ErrInvalidBody)

	_, err = decode(t, `{"price":"ten"}`)
	assert.ErrorIs(t, err, ErrInvalidBody)
}
