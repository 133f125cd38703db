package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func fuelRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/calculate-fuel", CalculateFuel)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateFuelBike(t *testing.T) {
	w := postJSON(t, fuelRouter(), "/api/calculate-fuel",
		`{"distance_km":100,"vehicle_type":"bike","fuel_price":104.0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		MileageKmpl   float64 `json:"mileage_kmpl"`
		FuelLiters    float64 `json:"fuel_liters"`
		PricePerLiter float64 `json:"fuel_price_per_liter"`
		TotalFuelCost float64 `json:"total_fuel_cost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.MileageKmpl != 45 || resp.FuelLiters != 2.22 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.PricePerLiter != 104.0 {
		t.Fatalf("price = %v, want 104", resp.PricePerLiter)
	}
}

func TestCalculateFuelDefaultPrice(t *testing.T) {
	w := postJSON(t, fuelRouter(), "/api/calculate-fuel",
		`{"distance_km":150,"vehicle_type":"car"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		FuelLiters    float64 `json:"fuel_liters"`
		TotalFuelCost float64 `json:"total_fuel_cost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.FuelLiters != 10.0 || resp.TotalFuelCost != 1040.0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCalculateFuelRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"negative distance", `{"distance_km":-5,"vehicle_type":"car"}`},
		{"unknown vehicle", `{"distance_km":10,"vehicle_type":"plane"}`},
		{"missing vehicle", `{"distance_km":10}`},
		{"negative price", `{"distance_km":10,"vehicle_type":"car","fuel_price":-1}`},
	}
	r := fuelRouter()
	for _, tc := range cases {
		if w := postJSON(t, r, "/api/calculate-fuel", tc.body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, w.Code)
		}
	}
}
