package handler

import (
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"time"

	"sms-expense-backend/internal/services/ingest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IngestHandler struct {
	service *ingest.Service
}

func NewIngestHandler(s *ingest.Service) *IngestHandler {
	return &IngestHandler{service: s}
}

// IngestMessage runs one notification text through the pipeline and returns
// the terminal outcome: 201 with the persisted expense, or 200 with the
// rejection reason (a rejection is a normal result, not a client error).
func (h *IngestHandler) IngestMessage(c *gin.Context) {
	var payload struct {
		Sender     string `json:"sender"`
		Body       string `json:"body"`
		ReceivedAt string `json:"received_at"` // RFC3339, optional
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Sender == "" || payload.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender and body are required"})
		return
	}

	receivedAt := time.Now()
	if payload.ReceivedAt != "" {
		t, err := time.Parse(time.RFC3339, payload.ReceivedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid received_at, expected RFC3339"})
			return
		}
		receivedAt = t
	}

	outcome, err := h.service.Process(ingest.RawMessage{
		Sender:     payload.Sender,
		Body:       payload.Body,
		ReceivedAt: receivedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if outcome.State == ingest.StateRejected {
		c.JSON(http.StatusOK, gin.H{"status": "rejected", "reason": outcome.Reason})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":          "persisted",
		"expense":         outcome.Expense,
		"payment_mode_id": outcome.PaymentModeID.String(),
	})
}

// UploadBackup accepts a CSV SMS backup (date,sender,body), creates a batch,
// and processes it in the background.
func (h *IngestHandler) UploadBackup(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	messages, err := readBackupCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read CSV"})
		return
	}

	batch := h.service.CreateBatch(header.Filename, len(messages))

	go h.service.ProcessBatch(batch.ID, messages)

	c.JSON(http.StatusAccepted, gin.H{
		"batch_id": batch.ID.String(),
		"status":   "processing",
		"total":    len(messages),
	})
}

// readBackupCSV loads all rows up front so processing can continue after the
// request's file handle is closed.
func readBackupCSV(r io.Reader) ([]ingest.RawMessage, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, err
	}

	var messages []ingest.RawMessage
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		if len(record) < 3 || strings.Join(record, "") == "" {
			continue
		}

		dateStr := strings.TrimSpace(record[0])
		receivedAt, err := time.Parse("2006-01-02 15:04:05", dateStr)
		if err != nil {
			receivedAt, err = time.Parse(time.RFC3339, dateStr)
		}
		if err != nil {
			continue // skip if date invalid
		}

		messages = append(messages, ingest.RawMessage{
			Sender:     strings.TrimSpace(record[1]),
			Body:       record[2],
			ReceivedAt: receivedAt,
		})
	}
	return messages, nil
}

func (h *IngestHandler) GetBatchProgress(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("batchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch ID"})
		return
	}

	batch, err := h.service.GetBatch(batchID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"processed_count": batch.ProcessedCount,
		"persisted_count": batch.PersistedCount,
		"rejected_count":  batch.RejectedCount,
		"total":           batch.TotalMessages,
		"status":          batch.Status,
	})
}

func (h *IngestHandler) ListExpenses(c *gin.Context) {
	cursor := c.Query("cursor")
	search := c.Query("search")
	limit := 50

	items, nextCursor, hasMore, err := h.service.ListExpenses(cursor, limit, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"next_cursor": nextCursor,
		"has_more":    hasMore,
	})
}

func (h *IngestHandler) ListPaymentModes(c *gin.Context) {
	modes, err := h.service.ListPaymentModes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": modes})
}
