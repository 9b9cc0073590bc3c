package client

// http_client.go = talks to the moviehub REST API for the CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"moviehub/internal/microservices/http-api/dto"
)

// ErrNotFound is returned for 404 answers.
var ErrNotFound = errors.New("not found")

// APIError carries a problem-details body returned by the server.
type APIError struct {
	Problem dto.ProblemDetails
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s", e.Problem.Status, e.Problem.Title)
	if e.Problem.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Problem.Detail)
	}
	for _, fe := range e.Problem.Errors {
		fmt.Fprintf(&b, "\n  %s: %s", fe.Field, fe.Message)
	}
	return b.String()
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// Page is one slice of a paginated list plus the server-side total.
type Page[T any] struct {
	Items []T
	Total int64
}

// MovieForm is what the CLI sends on movie create.
type MovieForm struct {
	Title       string
	Summary     string
	ReleaseDate string
	InTheaters  bool
	GenreIDs    []int64
	CinemaIDs   []int64
	Actors      []dto.MovieActorCreationDTO
	PosterPath  string
}

// do sends one request and decodes a 2xx JSON answer into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.Header, ErrNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		return resp.Header, decodeError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.Header, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.Header, nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var p dto.ProblemDetails
	if err := json.Unmarshal(raw, &p); err == nil && p.Status != 0 {
		return &APIError{Problem: p}
	}
	// auth middleware answers {"error": "..."}
	var plain struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &plain); err == nil && plain.Error != "" {
		return &APIError{Problem: dto.NewProblem(resp.StatusCode, plain.Error, "")}
	}
	return &APIError{Problem: dto.NewProblem(resp.StatusCode, "", "")}
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) (http.Header, error) {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, in, out any) error {
	jsonData, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, method, path, bytes.NewReader(jsonData), "application/json", out)
	return err
}

func (c *HTTPClient) create(ctx context.Context, path string, in any) (int64, error) {
	var created dto.CreatedResponse
	if err := c.sendJSON(ctx, http.MethodPost, path, in, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *HTTPClient) remove(ctx context.Context, path string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, "", nil)
	return err
}

func listPath(path string, page, pageSize int) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func list[T any](ctx context.Context, c *HTTPClient, path string) (Page[T], error) {
	var items []T
	h, err := c.getJSON(ctx, path, &items)
	if err != nil {
		return Page[T]{}, err
	}
	total, _ := strconv.ParseInt(h.Get("total-record-count"), 10, 64)
	return Page[T]{Items: items, Total: total}, nil
}

// Genres

func (c *HTTPClient) ListGenres(ctx context.Context, page, pageSize int) (Page[dto.GenreDTO], error) {
	return list[dto.GenreDTO](ctx, c, listPath("/api/genres", page, pageSize))
}

func (c *HTTPClient) AllGenres(ctx context.Context) ([]dto.GenreDTO, error) {
	var out []dto.GenreDTO
	_, err := c.getJSON(ctx, "/api/genres/all", &out)
	return out, err
}

func (c *HTTPClient) CreateGenre(ctx context.Context, name string) (int64, error) {
	return c.create(ctx, "/api/genres", dto.GenreCreationDTO{Name: name})
}

func (c *HTTPClient) DeleteGenre(ctx context.Context, id int64) error {
	return c.remove(ctx, "/api/genres", id)
}

// Cinemas

func (c *HTTPClient) ListCinemas(ctx context.Context, page, pageSize int) (Page[dto.CinemaDTO], error) {
	return list[dto.CinemaDTO](ctx, c, listPath("/api/cinemas", page, pageSize))
}

func (c *HTTPClient) CreateCinema(ctx context.Context, name string, lat, lon float64) (int64, error) {
	return c.create(ctx, "/api/cinemas", dto.CinemaCreationDTO{Name: name, Latitude: &lat, Longitude: &lon})
}

func (c *HTTPClient) DeleteCinema(ctx context.Context, id int64) error {
	return c.remove(ctx, "/api/cinemas", id)
}

// Actors

func (c *HTTPClient) ListActors(ctx context.Context, page, pageSize int) (Page[dto.ActorDTO], error) {
	return list[dto.ActorDTO](ctx, c, listPath("/api/actors", page, pageSize))
}

func (c *HTTPClient) SearchActors(ctx context.Context, name string) ([]dto.MovieActorDTO, error) {
	var out []dto.MovieActorDTO
	_, err := c.getJSON(ctx, "/api/actors/search-by-name?"+url.Values{"name": {name}}.Encode(), &out)
	return out, err
}

func (c *HTTPClient) DeleteActor(ctx context.Context, id int64) error {
	return c.remove(ctx, "/api/actors", id)
}

// Movies

func (c *HTTPClient) Landing(ctx context.Context) (*dto.LandingPageDTO, error) {
	var out dto.LandingPageDTO
	if _, err := c.getJSON(ctx, "/api/movies", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FilterMovies(ctx context.Context, f dto.MovieFilterDTO) (Page[dto.MovieDTO], error) {
	q := url.Values{}
	if f.Title != "" {
		q.Set("title", f.Title)
	}
	if f.InTheaters {
		q.Set("inTheaters", "true")
	}
	if f.UpcomingReleases {
		q.Set("upcomingReleases", "true")
	}
	if f.GenreID > 0 {
		q.Set("genreId", strconv.FormatInt(f.GenreID, 10))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(f.PageSize))
	}
	return list[dto.MovieDTO](ctx, c, "/api/movies/filter?"+q.Encode())
}

func (c *HTTPClient) GetMovie(ctx context.Context, id int64) (*dto.MovieDTO, error) {
	var out dto.MovieDTO
	if _, err := c.getJSON(ctx, fmt.Sprintf("/api/movies/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMovie posts the multipart movie form, attaching the poster when a
// path is given.
func (c *HTTPClient) CreateMovie(ctx context.Context, m MovieForm) (int64, error) {
	body, contentType, err := m.encode()
	if err != nil {
		return 0, err
	}
	var created dto.CreatedResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/movies", body, contentType, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *HTTPClient) DeleteMovie(ctx context.Context, id int64) error {
	return c.remove(ctx, "/api/movies", id)
}

func (m MovieForm) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       m.Title,
		"summary":     m.Summary,
		"releaseDate": m.ReleaseDate,
		"inTheaters":  strconv.FormatBool(m.InTheaters),
	}
	for _, jf := range []struct {
		name  string
		value any
		set   bool
	}{
		{"genreIds", m.GenreIDs, len(m.GenreIDs) > 0},
		{"cinemaIds", m.CinemaIDs, len(m.CinemaIDs) > 0},
		{"actors", m.Actors, len(m.Actors) > 0},
	} {
		if !jf.set {
			continue
		}
		raw, err := json.Marshal(jf.value)
		if err != nil {
			return nil, "", err
		}
		fields[jf.name] = string(raw)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if m.PosterPath != "" {
		f, err := os.Open(m.PosterPath)
		if err != nil {
			return nil, "", fmt.Errorf("open poster: %w", err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("poster", filepath.Base(m.PosterPath))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("read poster: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
