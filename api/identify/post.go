package identify

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/songid/api/types"
	identifysvc "github.com/killallgit/songid/internal/services/identify"
	apperrors "github.com/killallgit/songid/pkg/errors"
)

// Post handles audio identification requests. The uploaded file is written
// to the temp dir, identified, and the raw service body is relayed in the
// requested format.
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			if isMaxBytesError(err) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds the size limit"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing audio file upload"})
			return
		}

		format := c.DefaultPostForm("format", identifysvc.FormatJSON)

		// Each request gets its own temp file. Client filenames are not
		// unique, so deriving the path from them would let concurrent
		// uploads overwrite and delete each other's audio mid-pipeline.
		tempFile, err := os.CreateTemp(deps.TempDir, "identify_*"+filepath.Ext(fileHeader.Filename))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
			return
		}
		tempPath := tempFile.Name()
		tempFile.Close()
		defer os.Remove(tempPath)

		if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
			if isMaxBytesError(err) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds the size limit"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
			return
		}

		// One identifier per request: the core is not built for concurrent
		// mutation, so each upload gets its own.
		ident := identifysvc.New(deps.Fingerprinter, deps.Lookup)
		ident.SetClientKey(deps.ClientKey)

		if err := ident.SetResponseFormat(format); err != nil {
			respondError(c, err)
			return
		}
		if err := ident.SetFile(tempPath); err != nil {
			respondError(c, err)
			return
		}

		body, err := ident.Query(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		contentType := "application/json"
		if ident.ResponseFormat() == identifysvc.FormatXML {
			contentType = "application/xml"
		}
		c.Data(http.StatusOK, contentType, []byte(body))
	}
}

// isMaxBytesError reports whether err came from http.MaxBytesReader
// tripping on an oversized body. The multipart reader may wrap the error,
// so the sentinel message is checked as well.
func isMaxBytesError(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large")
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.GetHTTPCode(err), gin.H{
		"code":  string(apperrors.GetCode(err)),
		"error": err.Error(),
	})
}
