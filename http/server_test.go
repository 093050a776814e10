package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/teologia"
	thttp "github.com/fwojciec/teologia/http"
	"github.com/fwojciec/teologia/inmem"
	"github.com/fwojciec/teologia/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, sources teologia.SourceService) (*httptest.Server, *http.Client) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(thttp.NewServer(sources, thttp.WithLogger(logger)))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func getPage(t *testing.T, client *http.Client, baseURL string) *goquery.Document {
	t.Helper()

	resp, err := client.Get(baseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) *goquery.Document {
	t.Helper()

	resp, err := client.PostForm(target, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "redirect should land on the page")

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func resultIDs(doc *goquery.Document) []string {
	var ids []string
	doc.Find("#results li").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("data-id")
		ids = append(ids, id)
	})
	return ids
}

func TestServer_Index(t *testing.T) {
	t.Parallel()

	t.Run("renders form and placeholder before any search", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		doc := getPage(t, client, srv.URL)

		assert.Equal(t, 3, doc.Find("#query option").Length())
		selected, _ := doc.Find("#query option[selected]").Attr("value")
		assert.Equal(t, "puntual", selected)
		assert.Equal(t, 3, doc.Find("#query .pill").Length())
		assert.Equal(t, 0, doc.Find("#query .pill.active").Length())
		assert.Equal(t, thttp.ResultsPlaceholder, strings.TrimSpace(doc.Find("#results .placeholder").Text()))
		assert.Empty(t, strings.TrimSpace(doc.Find("#answer .answer").Text()))
	})

	t.Run("sets a session cookie and security headers", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t, inmem.NewSourceService())

		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		var found bool
		for _, c := range resp.Cookies() {
			if c.Name == thttp.SessionCookieName {
				found = true
				assert.NotEmpty(t, c.Value)
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, found)
		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
		assert.Equal(t, "no-referrer", resp.Header.Get("Referrer-Policy"))
	})
}

func TestServer_Search(t *testing.T) {
	t.Parallel()

	t.Run("pointed search for Tomás", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		doc := postForm(t, client, srv.URL+"/search", url.Values{"q": {"Tomás"}, "mode": {"puntual"}})

		answer := doc.Find("#answer .answer")
		assert.Equal(t, "Respuesta puntual", answer.Find("strong").First().Text())
		assert.Equal(t, "Summa Theologiae", answer.Find("em").First().Text())
		assert.Contains(t, answer.Text(), "Santo Tomás de Aquino")
		assert.Contains(t, answer.Text(), "La gracia no destruye la naturaleza, sino que la perfecciona.")

		link := answer.Find("a")
		require.Equal(t, 1, link.Length())
		assert.Equal(t, "texto exacto", link.Text())
		href, _ := link.Attr("href")
		assert.Equal(t, "https://www.newadvent.org/summa/", href)

		assert.Equal(t, []string{"tomas-summa"}, resultIDs(doc))
		assert.Equal(t, "(I, q.1)", doc.Find("#results .section").Text())
		assert.Equal(t, "Tomás", doc.Find(`#query input[name="q"]`).AttrOr("value", ""))
	})

	t.Run("comparative search restricted to doctors", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		form := url.Values{"q": {"mística"}, "mode": {"comparativo"}}

		toggleForm := url.Values{"q": form["q"], "mode": form["mode"], "category": {"Doctor de la Iglesia"}}
		postForm(t, client, srv.URL+"/toggle", toggleForm)
		doc := postForm(t, client, srv.URL+"/search", form)

		assert.Equal(t, []string{"juan-cruz-subida"}, resultIDs(doc))
		assert.Contains(t, doc.Find("#answer").Text(), "San Juan de la Cruz")
		assert.NotContains(t, doc.Find("#answer").Text(), "Rahner")
		assert.Equal(t, "ver pasaje", doc.Find("#answer a").Text())
		assert.Equal(t, "Doctor de la Iglesia", doc.Find("#query .pill.active").Text())
	})

	t.Run("no matches shows the no-results answer", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		doc := postForm(t, client, srv.URL+"/search", url.Values{"q": {"zzzznotfound"}, "mode": {"resumen"}})

		assert.Equal(t, teologia.NoResultsMessage, strings.TrimSpace(doc.Find("#answer .answer").Text()))
		assert.Empty(t, resultIDs(doc))
		assert.Equal(t, 0, doc.Find("#answer a").Length())
	})

	t.Run("summary of philosophers", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		postForm(t, client, srv.URL+"/toggle", url.Values{"mode": {"resumen"}, "category": {"Filósofo"}})
		doc := postForm(t, client, srv.URL+"/search", url.Values{"q": {""}, "mode": {"resumen"}})

		assert.Equal(t, []string{"aristoteles-met", "platon-republica", "boecio"}, resultIDs(doc))
		assert.Contains(t, doc.Find("#answer").Text(), teologia.SummarySynthesis)
		assert.Equal(t, 3, doc.Find("#answer a").Length())
		doc.Find("#answer a").Each(func(_ int, sel *goquery.Selection) {
			assert.Equal(t, "cita fuente", sel.Text())
		})
	})

	t.Run("citation links open in a new tab without opener", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		doc := postForm(t, client, srv.URL+"/search", url.Values{"q": {""}, "mode": {"comparativo"}})

		links := doc.Find("a")
		require.Equal(t, 3+13, links.Length())
		links.Each(func(_ int, sel *goquery.Selection) {
			assert.Equal(t, "_blank", sel.AttrOr("target", ""))
			assert.Contains(t, sel.AttrOr("rel", ""), "noopener")
			assert.Contains(t, sel.AttrOr("rel", ""), "noreferrer")
		})
	})

	t.Run("escapes source fields", func(t *testing.T) {
		t.Parallel()

		sources := &mock.SourceService{
			FindSourcesFn: func(_ context.Context, _ teologia.SourceFilter) ([]teologia.Source, error) {
				return []teologia.Source{{
					ID:       "x",
					Author:   "<script>alert(1)</script>",
					Category: teologia.CategoryTheologian,
					Work:     "**not bold**",
					Topics:   []string{"t"},
					URL:      "javascript:alert(1)",
					Quote:    "<b>q</b>",
				}}, nil
			},
		}

		srv, client := newTestServer(t, sources)
		doc := postForm(t, client, srv.URL+"/search", url.Values{"q": {"x"}})

		assert.Equal(t, 0, doc.Find("script").Length())
		assert.Equal(t, 0, doc.Find("#answer b").Length())
		assert.Equal(t, "**not bold**", doc.Find("#answer em").Text())
		assert.Contains(t, doc.Find("#answer").Text(), "<script>alert(1)</script>")
		href := doc.Find("#answer a").AttrOr("href", "")
		assert.NotContains(t, href, "javascript:")
	})
}

func TestServer_Toggle(t *testing.T) {
	t.Parallel()

	t.Run("toggles without searching and keeps text and mode", func(t *testing.T) {
		t.Parallel()

		var called atomic.Bool
		sources := &mock.SourceService{
			FindSourcesFn: func(_ context.Context, _ teologia.SourceFilter) ([]teologia.Source, error) {
				called.Store(true)
				return nil, nil
			},
		}

		srv, client := newTestServer(t, sources)
		doc := postForm(t, client, srv.URL+"/toggle", url.Values{
			"q":        {"gracia"},
			"mode":     {"resumen"},
			"category": {"Teólogo"},
		})

		assert.False(t, called.Load())
		assert.Equal(t, "Teólogo", doc.Find("#query .pill.active").Text())
		assert.Equal(t, "true", doc.Find("#query .pill.active").AttrOr("aria-pressed", ""))
		assert.Equal(t, "gracia", doc.Find(`#query input[name="q"]`).AttrOr("value", ""))
		assert.Equal(t, "resumen", doc.Find("#query option[selected]").AttrOr("value", ""))
		assert.Equal(t, thttp.ResultsPlaceholder, strings.TrimSpace(doc.Find("#results .placeholder").Text()))
	})

	t.Run("second toggle removes the category", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		form := url.Values{"category": {"Filósofo"}}
		postForm(t, client, srv.URL+"/toggle", form)
		doc := postForm(t, client, srv.URL+"/toggle", form)

		assert.Equal(t, 0, doc.Find("#query .pill.active").Length())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		resp, err := client.PostForm(srv.URL+"/toggle", url.Values{"category": {"Santo"}})
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "unknown category")
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		srv, client := newTestServer(t, inmem.NewSourceService())
		resp, err := client.PostForm(srv.URL+"/search", url.Values{"mode": {"detallado"}})
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Sessions(t *testing.T) {
	t.Parallel()

	t.Run("keeps state separate per session", func(t *testing.T) {
		t.Parallel()

		srv, alice := newTestServer(t, inmem.NewSourceService())
		jar, err := cookiejar.New(nil)
		require.NoError(t, err)
		bob := &http.Client{Jar: jar}

		postForm(t, alice, srv.URL+"/search", url.Values{"q": {"Boecio"}})
		doc := getPage(t, bob, srv.URL)

		assert.Empty(t, resultIDs(doc))
		assert.Equal(t, []string{"boecio"}, resultIDs(getPage(t, alice, srv.URL)))
	})

	t.Run("reports internal errors without details", func(t *testing.T) {
		t.Parallel()

		sources := &mock.SourceService{
			FindSourcesFn: func(_ context.Context, _ teologia.SourceFilter) ([]teologia.Source, error) {
				return nil, io.ErrUnexpectedEOF
			},
		}

		srv, client := newTestServer(t, sources)
		resp, err := client.PostForm(srv.URL+"/search", url.Values{"q": {"x"}})
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(body), "unexpected EOF")
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, inmem.NewSourceService())
	resp, err := client.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))
}

func TestServer_OpenClose(t *testing.T) {
	t.Parallel()

	s := thttp.NewServer(inmem.NewSourceService(), thttp.WithAddr("127.0.0.1:0"))
	require.NoError(t, s.Open())

	resp, err := http.Get(s.URL() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Close())
}
