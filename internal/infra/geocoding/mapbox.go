// Package geocoding resolves addresses through the Mapbox geocoding API.
package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wander/config"
	"wander/internal/domain/entity"
	"wander/internal/domain/service"
	"wander/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL        = "https://api.mapbox.com"
	forwardPath           = "/search/geocode/v6/forward"
	reversePath           = "/search/geocode/v6/reverse"
	requestTimeout        = 10 * time.Second
	maxResponseBodyBytes  = 1 << 20
	defaultRequestsPerMin = 50
)

// ErrNotConfigured is returned when no access token is configured.
var ErrNotConfigured = errors.New("geocoder access token is not configured")

// Params defines the parameters required for the geocoder
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type mapboxGeocoder struct {
	baseURL *url.URL
	token   string
	country string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New creates the Mapbox geocoder. Requests share one limiter so the
// process stays under the upstream quota.
func New(params Params) (service.Geocoder, error) {
	var cfg config.GeocoderConfig
	if params.Config.Geocoder != nil {
		cfg = *params.Config.Geocoder
	}

	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid geocoder base url %q", base)
	}

	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMin
	}
	burst := max(cfg.Burst, 1)

	return &mapboxGeocoder{
		baseURL: baseURL,
		token:   cfg.Token,
		country: cfg.Country,
		client:  &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60), burst),
		logger:  params.Logger.With(slog.String("component", "geocoder")),
	}, nil
}

// Geocode resolves an address to the first matching coordinate.
func (g *mapboxGeocoder) Geocode(ctx context.Context, address string) (entity.Coordinate, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("limit", "1")
	if g.country != "" {
		query.Set("country", g.country)
	}

	feature, err := g.firstFeature(ctx, forwardPath, query)
	if err != nil {
		return entity.Coordinate{}, err
	}

	point, ok := feature.Geometry.(orb.Point)
	if !ok {
		return entity.Coordinate{}, errors.Wrapf(service.ErrNoGeocodeResult, "unexpected geometry %T", feature.Geometry)
	}

	return entity.Coordinate{Latitude: point.Lat(), Longitude: point.Lon()}, nil
}

// ReverseGeocode resolves a coordinate to its city and state.
func (g *mapboxGeocoder) ReverseGeocode(ctx context.Context, coordinate entity.Coordinate) (entity.Placemark, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(coordinate.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(coordinate.Longitude, 'f', -1, 64))
	query.Set("types", "place")
	query.Set("limit", "1")

	feature, err := g.firstFeature(ctx, reversePath, query)
	if err != nil {
		return entity.Placemark{}, err
	}

	placemark := placemarkFromProperties(feature.Properties)
	if placemark.City == "" {
		return entity.Placemark{}, errors.Wrapf(service.ErrNoGeocodeResult, "no place at %s", coordinate)
	}

	return placemark, nil
}

func (g *mapboxGeocoder) firstFeature(ctx context.Context, path string, query url.Values) (*geojson.Feature, error) {
	if g.token == "" {
		return nil, ErrNotConfigured
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "waiting for geocoder quota")
	}

	query.Set("access_token", g.token)
	endpoint := g.baseURL.JoinPath(path)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocoder request")
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoder request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read geocoder response")
	}

	g.logger.DebugContext(ctx, "Geocoder request finished",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	collection, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoder response")
	}
	if len(collection.Features) == 0 {
		return nil, service.ErrNoGeocodeResult
	}

	return collection.Features[0], nil
}

// placemarkFromProperties reads the city and state from a v6 feature.
// The state prefers the short region code, e.g. "CA".
func placemarkFromProperties(properties geojson.Properties) entity.Placemark {
	featureContext, _ := properties["context"].(map[string]any)
	place, _ := featureContext["place"].(map[string]any)
	region, _ := featureContext["region"].(map[string]any)

	city := stringProperty(place, "name")
	if city == "" && properties.MustString("feature_type", "") == "place" {
		city = properties.MustString("name", "")
	}

	state := stringProperty(region, "region_code")
	if state == "" {
		state = stringProperty(region, "name")
	}

	return entity.Placemark{City: city, State: state}
}

func stringProperty(values map[string]any, key string) string {
	value, _ := values[key].(string)

	return value
}
