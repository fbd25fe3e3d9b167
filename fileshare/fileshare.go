package fileshare

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"devbady/db"
	"devbady/models"
	"devbady/mq"
	"devbady/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	uploadDir    = "static/uploads"
	thumbDir     = "static/thumbs"
	maxUploadMiB = 50
)

// Handlers implement the file-share surface: the same listFiles/uploadFile
// contract a real drive integration would have, with the transfer itself
// simulated.
type Handlers struct {
	Hub *Hub
}

func NewHandlers(hub *Hub) *Handlers {
	return &Handlers{Hub: hub}
}

// ListFiles returns the records in a folder, newest first.
func (h *Handlers) ListFiles(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cursor, err := db.FilesCollection.Find(ctx, bson.M{
		"folderId": ps.ByName("folderid"),
		"userId":   userID,
	}, options.Find().SetSort(bson.M{"uploadedAt": -1}))
	if err != nil {
		http.Error(w, "Could not retrieve files", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var files []models.FileRecord
	if err := cursor.All(ctx, &files); err != nil {
		http.Error(w, "Error reading files", http.StatusInternalServerError)
		return
	}
	if files == nil {
		files = []models.FileRecord{}
	}
	utils.RespondWithJSON(w, http.StatusOK, files)
}

// UploadFile stores the file locally, runs the staged progress simulation
// and responds with {id, webViewLink} — the shape a real drive upload
// returns. The simulation shares the request context: when the client
// disconnects mid-transfer, the pacing loop stops and the partial record
// is cleaned up.
func (h *Handlers) UploadFile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	folderID := ps.ByName("folderid")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadMiB<<20)
	if err := r.ParseMultipartForm(maxUploadMiB << 20); err != nil {
		http.Error(w, "File too large or malformed form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileID := uuid.New().String()

	if err := utils.EnsureDir(uploadDir); err != nil {
		log.Println("UploadFile mkdir error:", err)
		http.Error(w, "Storage unavailable", http.StatusInternalServerError)
		return
	}

	ext := filepath.Ext(header.Filename)
	destPath := filepath.Join(uploadDir, fileID+ext)
	dest, err := os.Create(destPath)
	if err != nil {
		log.Println("UploadFile create error:", err)
		http.Error(w, "Storage unavailable", http.StatusInternalServerError)
		return
	}
	size, err := io.Copy(dest, file)
	dest.Close()
	if err != nil {
		os.Remove(destPath)
		http.Error(w, "Failed to store file", http.StatusInternalServerError)
		return
	}

	record := models.FileRecord{
		FileID:      fileID,
		FolderID:    folderID,
		UserID:      userID,
		Name:        header.Filename,
		Size:        size,
		MimeType:    header.Header.Get("Content-Type"),
		WebViewLink: fmt.Sprintf("https://files.devbady.in/view/%s", fileID),
		UploadedAt:  time.Now(),
	}

	// Thumbnails only for formats the imaging library can decode.
	if utils.SupportedImageTypes[record.MimeType] {
		if thumb, err := makeThumbnail(destPath, fileID); err == nil {
			record.Thumbnail = thumb
		} else {
			log.Println("UploadFile thumbnail error:", err)
		}
	}

	// Pace the simulated transfer before the record becomes visible. A
	// cancelled request aborts here and leaves nothing behind.
	if !runSimulation(r.Context(), h.Hub, fileID, defaultStages) {
		os.Remove(destPath)
		log.Printf("Upload %s aborted by client", fileID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := db.FilesCollection.InsertOne(ctx, record); err != nil {
		log.Println("UploadFile InsertOne error:", err)
		http.Error(w, "Failed to record upload", http.StatusInternalServerError)
		return
	}

	mq.Emit("upload-complete", mq.Event{
		UserID:  userID,
		Message: fmt.Sprintf("File %s uploaded (%.2f MB)", record.Name, float64(size)/1024/1024),
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"id":          record.FileID,
		"webViewLink": record.WebViewLink,
	})
}

func makeThumbnail(srcPath, fileID string) (string, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", err
	}
	thumb := imaging.Thumbnail(img, 200, 200, imaging.Lanczos)

	if err := utils.EnsureDir(thumbDir); err != nil {
		return "", err
	}
	thumbPath := filepath.Join(thumbDir, fileID+".jpg")
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", err
	}
	return "/" + thumbPath, nil
}
