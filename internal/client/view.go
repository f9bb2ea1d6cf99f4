package client

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"resumatch/internal/models"
)

// UploadState drives which view actions are allowed.
type UploadState int

const (
	StateIdle UploadState = iota
	StateUploading
	StateSucceeded
	StateFailed
)

func (s UploadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// User-visible messages. The wording is part of the UI contract.
const (
	MsgInvalidFileType  = "Please upload only PDF or DOCX files"
	MsgNoFileSelected   = "Please select a file first"
	MsgUploadInProgress = "An upload is already in progress"
	MsgGenericError     = "Error uploading resume. Please try again."
)

const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MIMETypeForFile maps a resume filename to its declared MIME type.
// Unknown extensions map to "" and fail selection.
func MIMETypeForFile(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MIMETypePDF
	case ".docx":
		return MIMETypeDOCX
	}
	return ""
}

// SelectedFile is the user's current choice, held in memory until
// submission.
type SelectedFile struct {
	Name     string
	MIMEType string
	Content  []byte
}

// View owns the upload flow state: the selected file, the in-flight
// flag, the last error message, and the last successful results.
// All methods are safe for concurrent use.
type View struct {
	mu       sync.Mutex
	client   *Client
	state    UploadState
	file     *SelectedFile
	errMsg   string
	analysis *models.ResumeAnalysis
	listings []models.JobListing
	openURL  func(url string) error
}

func NewView(c *Client) *View {
	return &View{
		client:  c,
		state:   StateIdle,
		openURL: OpenURL,
	}
}

// SelectFile validates the declared MIME type and stores the file. A
// rejected selection clears any previous one.
func (v *View) SelectFile(name, mimeType string, content []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if mimeType != MIMETypePDF && mimeType != MIMETypeDOCX {
		v.file = nil
		v.errMsg = MsgInvalidFileType
		return errors.New(MsgInvalidFileType)
	}

	v.file = &SelectedFile{
		Name:     name,
		MIMEType: mimeType,
		Content:  content,
	}
	v.errMsg = ""
	return nil
}

// Submit uploads the selected file. Only one upload may be in flight;
// a second Submit while uploading fails without touching the network.
// Whatever happens, the view never stays in StateUploading.
func (v *View) Submit(ctx context.Context) error {
	v.mu.Lock()

	if v.state == StateUploading {
		v.mu.Unlock()
		return errors.New(MsgUploadInProgress)
	}

	if v.file == nil {
		v.errMsg = MsgNoFileSelected
		v.mu.Unlock()
		return errors.New(MsgNoFileSelected)
	}

	v.state = StateUploading
	v.errMsg = ""
	file := v.file
	v.mu.Unlock()

	result, err := v.client.UploadResume(ctx, file.Name, bytes.NewReader(file.Content))

	v.mu.Lock()
	defer v.mu.Unlock()
	defer func() {
		if v.state == StateUploading {
			v.state = StateFailed
		}
	}()

	if err != nil {
		v.state = StateFailed
		v.errMsg = uploadErrorMessage(err)
		// Previous results are kept on purpose so the user still sees
		// their last successful matches next to the error.
		return err
	}

	v.state = StateSucceeded
	v.analysis = &result.ResumeAnalysis
	v.listings = result.JobListings
	return nil
}

// uploadErrorMessage surfaces the server's detail verbatim when it
// sent one, and the generic message otherwise.
func uploadErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return MsgGenericError
}

// OpenJob opens the i-th listing's URL in the user's browser. It reads
// but never mutates view state.
func (v *View) OpenJob(i int) error {
	v.mu.Lock()
	if i < 0 || i >= len(v.listings) {
		v.mu.Unlock()
		return errors.New("no such job listing")
	}
	url := v.listings[i].URL
	open := v.openURL
	v.mu.Unlock()

	return open(url)
}

func (v *View) State() UploadState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) ErrorMessage() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

func (v *View) SelectedFileName() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.file == nil {
		return ""
	}
	return v.file.Name
}

func (v *View) Analysis() *models.ResumeAnalysis {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.analysis
}

func (v *View) Listings() []models.JobListing {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.JobListing, len(v.listings))
	copy(out, v.listings)
	return out
}
