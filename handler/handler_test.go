package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/pdfchat/repository"
	"github.com/tieubaoca/pdfchat/service"
	"github.com/tieubaoca/pdfchat/types"
	"github.com/tieubaoca/pdfchat/utils"
)

const testOrigin = "http://localhost:3000"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeAIService struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeAIService) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeAIService) Model() string { return "fake" }

type testServer struct {
	router *gin.Engine
	ai     *fakeAIService
	repo   repository.DocumentRepo
}

func newTestServer(ai *fakeAIService) *testServer {
	repo := repository.NewDocumentRepo()
	router := SetupRouter(
		NewCorsHandler(testOrigin),
		NewUploadHandler(service.NewDocumentService(repo, service.NewPDFService())),
		NewChatHandler(service.NewChatService(repo, ai)),
	)
	return &testServer{router: router, ai: ai, repo: repo}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func uploadRequest(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/scrape", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func chatRequest(t *testing.T, messages ...types.Message) *http.Request {
	t.Helper()
	body, err := json.Marshal(types.NewChatRequest(messages...))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestScrape_Success(t *testing.T) {
	s := newTestServer(&fakeAIService{})

	w := s.do(uploadRequest(t, "file", "hello.pdf", "application/pdf", utils.MinimalPDF("Hello world")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "PDF processed successfully!", decode[types.MessageResponse](t, w).Message)

	doc := s.repo.GetDocument()
	require.NotNil(t, doc)
	assert.Equal(t, "hello.pdf", doc.Filename)
	assert.Contains(t, doc.Text, "Hello world")
}

func TestScrape_WrongMediaType(t *testing.T) {
	validPDF := utils.MinimalPDF("Hello world")
	for _, contentType := range []string{"text/plain", "application/octet-stream", "image/png"} {
		t.Run(contentType, func(t *testing.T) {
			s := newTestServer(&fakeAIService{})

			w := s.do(uploadRequest(t, "file", "hello.pdf", contentType, validPDF))
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid file type. Only PDF files are allowed.", decode[types.ErrorResponse](t, w).Detail)
			assert.Nil(t, s.repo.GetDocument())
		})
	}
}

func TestScrape_MissingFileField(t *testing.T) {
	s := newTestServer(&fakeAIService{})
	w := s.do(uploadRequest(t, "document", "hello.pdf", "application/pdf", utils.MinimalPDF("x")))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestScrape_ExtractionFailure(t *testing.T) {
	s := newTestServer(&fakeAIService{})

	w := s.do(uploadRequest(t, "file", "broken.pdf", "application/pdf", []byte("not really a pdf")))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	detail := decode[types.ErrorResponse](t, w).Detail
	assert.True(t, strings.HasPrefix(detail, "Error processing PDF: "), detail)
	assert.Greater(t, len(detail), len("Error processing PDF: "))
}

func TestChat_BeforeIngestion(t *testing.T) {
	ai := &fakeAIService{reply: "unused"}
	s := newTestServer(ai)

	w := s.do(chatRequest(t, types.Message{Role: "user", Content: "What does it say?"}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No PDF content has been processed yet.", decode[types.ErrorResponse](t, w).Detail)
	assert.Empty(t, ai.prompts)
}

func TestChat_InvalidBody(t *testing.T) {
	s := newTestServer(&fakeAIService{reply: "ok"})
	s.repo.SaveDocument(&types.Document{Text: "doc"})

	for name, body := range map[string]string{
		"not json":        "{",
		"missing list":    `{}`,
		"empty messages":  `{"messages": []}`,
		"empty message":   `{"messages": [{}]}`,
		"missing content": `{"messages": [{"role": "user"}]}`,
		"missing role":    `{"messages": [{"content": "hi"}]}`,
		"null content":    `{"messages": [{"role": "user", "content": null}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := s.do(req)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
	assert.Empty(t, s.ai.prompts)
}

func TestChat_EmptyContentAccepted(t *testing.T) {
	s := newTestServer(&fakeAIService{reply: "ok"})
	s.repo.SaveDocument(&types.Document{Text: "doc"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"messages": [{"role": "user", "content": ""}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := s.do(req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ok", decode[types.ChatResponse](t, w).Response)
	require.Len(t, s.ai.prompts, 1)
	assert.Contains(t, s.ai.prompts[0], "And here's the question:\n''")
}

func TestChat_GenerationFailure(t *testing.T) {
	s := newTestServer(&fakeAIService{err: errors.New("model overloaded")})
	s.repo.SaveDocument(&types.Document{Text: "doc"})

	w := s.do(chatRequest(t, types.Message{Role: "user", Content: "q"}))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error generating response: model overloaded", decode[types.ErrorResponse](t, w).Detail)
}

func TestIngestThenChat_EndToEnd(t *testing.T) {
	ai := &fakeAIService{reply: "## Summary\nIt says **\"Hello world\"**."}
	s := newTestServer(ai)

	w := s.do(uploadRequest(t, "file", "hello.pdf", "application/pdf", utils.MinimalPDF("Hello world")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(chatRequest(t, types.Message{Role: "user", Content: "What does it say?"}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Summary It says Hello world.", decode[types.ChatResponse](t, w).Response)

	require.Len(t, ai.prompts, 1)
	prompt := ai.prompts[0]
	assert.Contains(t, prompt, "Hello world")
	assert.Contains(t, prompt, "And here's the question:\n'What does it say?'")
	assert.True(t, service.IsFirstTurn([]types.Message{{Role: "user", Content: "What does it say?"}}))

	// a follow-up goes through the continuation template
	w = s.do(chatRequest(t,
		types.Message{Role: "user", Content: "What does it say?"},
		types.Message{Role: "assistant", Content: "Hello world"},
		types.Message{Role: "user", Content: "Anything else?"},
	))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ai.prompts, 2)
	assert.Contains(t, ai.prompts[1], "You: What does it say?\nMe: Hello world\nYou: Anything else?\n")
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeAIService{})
	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[types.HealthResponse](t, w).OK)
}
