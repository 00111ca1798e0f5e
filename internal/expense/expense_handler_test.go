package expense

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	expenseerrors "go-workforce/internal/expense/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	Service
	saveErr error
	lastReq SaveExpenseRequest
}

func (s *stubService) Save(_ context.Context, req SaveExpenseRequest) (SaveExpenseResult, error) {
	s.lastReq = req
	if s.saveErr != nil {
		return SaveExpenseResult{}, s.saveErr
	}
	return SaveExpenseResult{Expense: &Expense{ID: 1}}, nil
}

func multipartSaveRequest(t *testing.T, expenseData any, entriesData any, receipts map[string]string, entryIDs []string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	expenseJSON, err := json.Marshal(expenseData)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("expenseData", string(expenseJSON)))

	if entriesData != nil {
		entriesJSON, err := json.Marshal(entriesData)
		require.NoError(t, err)
		require.NoError(t, w.WriteField("expenseEntriesData", string(entriesJSON)))
	}

	for name, content := range receipts {
		fw, err := w.CreateFormFile("receipts", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for _, id := range entryIDs {
		require.NoError(t, w.WriteField("receiptEntryIds", id))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/expenses/save", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSaveHandler_ParsesMultipartForm(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubService{}
	store := &fakeFileStore{}
	h := NewHandler(svc, store, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartSaveRequest(t,
		gin.H{"employee_id": 1, "date_start": "2025-03-01", "num_of_days": "5"},
		[]gin.H{{"lodging_cost": "120.50"}},
		map[string]string{"receipt.pdf": "fake-pdf-bytes"},
		[]string{"3"},
	)

	h.Save(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.lastReq.ExpenseEntriesData, 1)
	assert.Equal(t, 120.50, svc.lastReq.ExpenseEntriesData[0].LodgingCost.Value())
	assert.Equal(t, int64(5), svc.lastReq.ExpenseData.NumOfDays.Value())
	require.Len(t, svc.lastReq.Receipts, 1)
	assert.Equal(t, int64(3), svc.lastReq.Receipts[0].EntryID)
}

func TestSaveHandler_DuplicateReturns200Fail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubService{saveErr: expenseerrors.ErrDuplicateDateStart}
	h := NewHandler(svc, &fakeFileStore{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartSaveRequest(t,
		gin.H{"employee_id": 1, "date_start": "2025-03-01"},
		nil, nil, nil,
	)

	h.Save(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fail", resp["internalStatus"])
	assert.Equal(t, "Expense Already Exists (Existing Date)", resp["message"])
}

func TestSaveHandler_BadJSONPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&stubService{}, &fakeFileStore{}, nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("expenseData", "{not json"))
	require.NoError(t, w.Close())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/expenses/save", &body)
	c.Request.Header.Set("Content-Type", w.FormDataContentType())

	h.Save(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
