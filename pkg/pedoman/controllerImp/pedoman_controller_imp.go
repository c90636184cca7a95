package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"simpupuk/pkg/pedoman/controller"
	"simpupuk/pkg/pedoman/service"
)

const maxBytesHalaman = 1500000

type PedomanCtrl struct {
	s     service.PedomanService
	allow map[string]bool
}

// New builds the controller; allowedDomains is the comma-separated host
// allowlist for URL ingestion.
func New(s service.PedomanService, allowedDomains string) controller.PedomanController {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(strings.ToLower(h))
		if h != "" {
			allow[h] = true
		}
	}
	return &PedomanCtrl{s: s, allow: allow}
}

type ingestReq struct {
	Judul     string `json:"judul"`
	Tags      string `json:"tags"`
	Teks      string `json:"teks"`
	SourceURL string `json:"source_url"`
}

func (h *PedomanCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "json tidak valid"})
	}
	doc, n, err := h.s.UpsertDocument(req.Judul, req.Tags, req.Teks, req.SourceURL)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": doc, "potongan": n})
}

func (h *PedomanCtrl) IngestURL(c echo.Context) error {
	var body struct{ URL, Tags, Judul string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url wajib diisi"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url tidak valid"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "domain tidak diizinkan"})
	}

	teks, judul, err := ambilTeksUtama(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	if body.Judul != "" {
		judul = body.Judul
	}
	doc, n, err := h.s.UpsertDocument(judul, body.Tags, teks, body.URL)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": doc, "potongan": n})
}

func (h *PedomanCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q wajib diisi"})
	}
	chunks, err := h.s.Search(q, 6)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(chunks))
	for _, ch := range chunks {
		if _, ok := seen[ch.DocID]; !ok {
			seen[ch.DocID] = struct{}{}
			ids = append(ids, ch.DocID)
		}
	}
	meta, _ := h.s.DocsMeta(ids)

	type hasil struct {
		ChunkID   uint   `json:"chunk_id"`
		DocID     uint   `json:"doc_id"`
		Urut      int    `json:"urut"`
		Teks      string `json:"teks"`
		Judul     string `json:"judul,omitempty"`
		SourceURL string `json:"source_url,omitempty"`
	}
	out := make([]hasil, 0, len(chunks))
	for _, ch := range chunks {
		o := hasil{ChunkID: ch.ChunkID, DocID: ch.DocID, Urut: ch.Urut, Teks: ch.Teks}
		if d, ok := meta[ch.DocID]; ok {
			o.Judul = d.Judul
			o.SourceURL = d.SourceURL
		}
		out = append(out, o)
	}
	return c.JSON(http.StatusOK, out)
}

// ambilTeksUtama fetches a page and extracts its readable text: main/article
// content first, the whole document as fallback.
func ambilTeksUtama(u string) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > maxBytesHalaman {
		return "", "", fmt.Errorf("halaman terlalu besar")
	}
	limited := io.LimitedReader{R: resp.Body, N: maxBytesHalaman}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "text/plain") {
		teks := string(b)
		baris := strings.SplitN(strings.TrimSpace(teks), "\n", 2)[0]
		return teks, baris, nil
	}
	if !strings.Contains(ct, "text/html") {
		return "", "", fmt.Errorf("content-type tidak didukung: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	judul := strings.TrimSpace(doc.Find("title").First().Text())

	var bagian []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			bagian = append(bagian, t)
		}
	})
	return strings.Join(bagian, "\n"), judul, nil
}
