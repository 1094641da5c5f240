package provisioning

import "github.com/attendo-app/attendo-backend-go/internal/pkg/validator"

type GenerateQRRequest struct {
	CompanyName string `json:"companyName"`
}

func (r *GenerateQRRequest) Validate() error {
	if validator.IsEmpty(r.CompanyName) {
		return validator.ValidationErrors{{
			Field:   "companyName",
			Message: "companyName is required",
		}}
	}
	return nil
}

type AddWifiRequest struct {
	SSID string `json:"ssid"`
}

func (r *AddWifiRequest) Validate() error {
	if validator.IsEmpty(r.SSID) {
		return validator.ValidationErrors{{
			Field:   "ssid",
			Message: "ssid is required",
		}}
	}
	return nil
}

type QRCodeResponse struct {
	ID          string `json:"_id"`
	CompanyName string `json:"companyName"`
	Image       string `json:"image"`
}

type WifiConfigResponse struct {
	ID   string `json:"_id"`
	SSID string `json:"ssid"`
}

func ToQRCodeResponse(q QRCode, imageURL string) QRCodeResponse {
	return QRCodeResponse{
		ID:          q.ID,
		CompanyName: q.CompanyName,
		Image:       imageURL,
	}
}

func ToWifiConfigResponse(w WifiConfig) WifiConfigResponse {
	return WifiConfigResponse{
		ID:   w.ID,
		SSID: w.SSID,
	}
}

func ToWifiConfigResponses(configs []WifiConfig) []WifiConfigResponse {
	out := make([]WifiConfigResponse, 0, len(configs))
	for _, c := range configs {
		out = append(out, ToWifiConfigResponse(c))
	}
	return out
}
