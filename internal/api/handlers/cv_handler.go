package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
)

const maxCVSize = 10 << 20 // 10MB

type CVHandler struct {
	svc services.CVFileService
}

func NewCVHandler(svc services.CVFileService) *CVHandler {
	return &CVHandler{svc: svc}
}

// Upload accepts a single PDF in the multipart field "file" and responds
// with the public URL callers pass back as cvUrl when applying.
func (h *CVHandler) Upload(c *gin.Context) {
	const op = "CVHandler.Upload"

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'file'", err))
		return
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "only .pdf is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > maxCVSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file too large (max 10MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	// The extension is caller-controlled; the magic bytes are not.
	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	head = head[:n]
	if http.DetectContentType(head) != "application/pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid content type (must be pdf)", nil))
		return
	}

	body := io.MultiReader(bytes.NewReader(head), file)
	url, err := h.svc.Upload(c.Request.Context(), fh.Filename, "application/pdf", body)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBody(c, http.StatusOK, gin.H{"cvUrl": url}, "CV uploaded successfully")
}
