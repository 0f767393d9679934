package api

import (
	"context"
	"fmt"
	"net/url"

	"nba-stats/internal/config"
	"nba-stats/internal/constants"
	"nba-stats/internal/domain"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type BallDontLieClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewBallDontLieClient(cfg *config.Config) *BallDontLieClient {
	return &BallDontLieClient{
		baseURL: cfg.BallDontLieURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.ExternalAPIMaxConnsPerHost,
			ReadTimeout:         constants.ExternalAPIReadTimeout,
			WriteTimeout:        constants.ExternalAPIWriteTimeout,
			MaxIdleConnDuration: constants.ExternalAPIMaxIdleConn,
		},
	}
}

// SearchPlayers resolves a free-text name to the players the API matches.
func (c *BallDontLieClient) SearchPlayers(ctx context.Context, query string) ([]domain.Player, error) {
	u := fmt.Sprintf("%s/players?search=%s", c.baseURL, url.QueryEscape(query))
	resp, err := doRequest[PlayersResponse](ctx, c, u)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, &MalformedResponseError{URL: u, Err: errMissingData}
	}

	players := make([]domain.Player, 0, len(*resp.Data))
	for _, p := range *resp.Data {
		players = append(players, p.toDomain())
	}
	return players, nil
}

// GetSeasonAverages returns the record for exactly the requested season, or
// nil when the API has none.
func (c *BallDontLieClient) GetSeasonAverages(ctx context.Context, playerID, season int) (*domain.SeasonAverage, error) {
	u := fmt.Sprintf("%s/season_averages?season=%d&player_ids[]=%d", c.baseURL, season, playerID)
	resp, err := doRequest[SeasonAveragesResponse](ctx, c, u)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, &MalformedResponseError{URL: u, Err: errMissingData}
	}

	for _, avg := range *resp.Data {
		if avg.Season == season {
			return &avg, nil
		}
	}
	return nil, nil
}

func doRequest[T any](ctx context.Context, client *BallDontLieClient, rawURL string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, &NetworkError{URL: rawURL, Err: err}
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, &NetworkError{URL: rawURL, Err: err}
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &NetworkError{URL: rawURL, StatusCode: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &MalformedResponseError{URL: rawURL, Err: err}
	}
	return &result, nil
}

type PlayersResponse struct {
	Data *[]PlayerData `json:"data"`
	Meta *Meta         `json:"meta,omitempty"`
}

type PlayerData struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	HeightFeet   *int   `json:"height_feet"`
	HeightInches *int   `json:"height_inches"`
	Team         struct {
		ID           int    `json:"id"`
		Abbreviation string `json:"abbreviation"`
		FullName     string `json:"full_name"`
	} `json:"team"`
}

func (p PlayerData) toDomain() domain.Player {
	return domain.Player{
		ID:               p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		TeamAbbreviation: p.Team.Abbreviation,
		HeightFeet:       p.HeightFeet,
		HeightInches:     p.HeightInches,
	}
}

type SeasonAveragesResponse struct {
	Data *[]domain.SeasonAverage `json:"data"`
}

type Meta struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	NextPage    int `json:"next_page"`
	PerPage     int `json:"per_page"`
	TotalCount  int `json:"total_count"`
}
