package get_catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(domain.DefaultCatalog(), logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Services, 4)
	assert.Equal(t, "BATH", resp.Services[0].Type)
	assert.InDelta(t, 65.0, resp.Services[0].Prices["UP_TO_5"], 0.001)
	assert.Nil(t, resp.Services[2].Prices, "visits are free")

	assert.Len(t, resp.Weights, 7)
	assert.Equal(t, []int{9, 10, 11, 13, 14, 15, 16, 17}, resp.Schedule.WorkingHours)
	assert.Equal(t, []string{"Saturday", "Sunday"}, resp.Schedule.ClosedWeekdays)

	var patacure *AddonResponse
	for i := range resp.Addons {
		if resp.Addons[i].ID == "patacure1" {
			patacure = &resp.Addons[i]
		}
	}
	require.NotNil(t, patacure)
	require.NotNil(t, patacure.ExclusionGroup)
	assert.Equal(t, "patacure", *patacure.ExclusionGroup)
}
