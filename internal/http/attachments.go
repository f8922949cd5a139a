package http

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) attachmentPrefix(itemID int64) string {
	prefix := strings.Trim(h.keyPrefix, "/")
	if prefix == "" {
		return fmt.Sprintf("items/%d/", itemID)
	}
	return fmt.Sprintf("%s/items/%d/", prefix, itemID)
}

func (h *Handler) uploadAttachment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.items.GetByID(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	filename := path.Base(strings.TrimSpace(c.Query("filename")))
	if filename == "" || filename == "." || filename == "/" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename is required"})
		return
	}

	key := h.attachmentPrefix(id) + filename
	if err := h.storage.PutObject(c.Request.Context(), h.bucket, key, c.Request.Body); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key})
}

func (h *Handler) listAttachments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.items.GetByID(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	objects, err := h.storage.ListObjects(c.Request.Context(), h.bucket, h.attachmentPrefix(id))
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]AttachmentResponse, len(objects))
	for i, obj := range objects {
		resp[i] = AttachmentResponse{
			Key:  obj.Key,
			Size: obj.Size,
		}
		if obj.LastModified != nil && !obj.LastModified.IsZero() {
			v := obj.LastModified.Format(time.RFC3339)
			resp[i].LastModified = &v
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) attachmentURL(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.items.GetByID(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	key := strings.TrimSpace(c.Query("key"))
	if !strings.HasPrefix(key, h.attachmentPrefix(id)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key does not belong to item"})
		return
	}

	url, err := h.storage.GetObjectURL(c.Request.Context(), h.bucket, key, attachmentURLExpiry)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
