// internal/adapters/provinces/client.go
package provinces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"roomscout/internal/adapters/observability"
	"roomscout/internal/domain"
)

// Client fetches Vietnam administrative divisions from the public
// provinces.open-api.vn directory. Calls are one-shot: the call sites degrade
// to a fixed fallback list when this upstream is unavailable, so there is no
// retry policy here.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{base: base, hc: &http.Client{Timeout: 10 * time.Second}}
}

type wireUnit struct {
	Code      json.Number `json:"code"`
	Name      string      `json:"name"`
	NameEn    string      `json:"name_en"`
	Districts []wireUnit  `json:"districts"`
	Wards     []wireUnit  `json:"wards"`
}

func (c *Client) Provinces(ctx context.Context) ([]domain.Province, error) {
	var units []wireUnit
	if err := c.get(ctx, c.base+"/p/", "provinces", &units); err != nil {
		return nil, err
	}
	out := make([]domain.Province, 0, len(units))
	for _, u := range units {
		out = append(out, domain.Province{Code: u.Code.String(), Name: u.Name, NameEn: u.NameEn})
	}
	return out, nil
}

func (c *Client) Districts(ctx context.Context, provinceCode string) ([]domain.District, error) {
	var unit wireUnit
	url := fmt.Sprintf("%s/p/%s?depth=2", c.base, provinceCode)
	if err := c.get(ctx, url, "districts", &unit); err != nil {
		return nil, err
	}
	out := make([]domain.District, 0, len(unit.Districts))
	for _, d := range unit.Districts {
		out = append(out, domain.District{
			Code: d.Code.String(), Name: d.Name, NameEn: d.NameEn, ProvinceCode: provinceCode,
		})
	}
	return out, nil
}

func (c *Client) Wards(ctx context.Context, districtCode string) ([]domain.Ward, error) {
	var unit wireUnit
	url := fmt.Sprintf("%s/d/%s?depth=2", c.base, districtCode)
	if err := c.get(ctx, url, "wards", &unit); err != nil {
		return nil, err
	}
	out := make([]domain.Ward, 0, len(unit.Wards))
	for _, w := range unit.Wards {
		out = append(out, domain.Ward{
			Code: w.Code.String(), Name: w.Name, NameEn: w.NameEn, DistrictCode: districtCode,
		})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, url, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "roomscout/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("provinces", endpoint, 0, time.Since(start))
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("provinces", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provinces: bad status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
