// Package storage keeps the CV PDF in S3-compatible object storage.
//
// Uploads go through [S3Storage.Put] with an explicit key; visitors never
// download through the server but are redirected to a short-lived presigned
// URL that forces a file download:
//
//	store, err := storage.New(cfg.Storage)
//	if _, err := store.Head(ctx, "cv/cv.pdf"); errors.Is(err, storage.ErrNotFound) {
//		// 404
//	}
//	url, err := store.URL(ctx, "cv/cv.pdf", storage.WithDownload("Jane-Doe-CV.pdf"))
package storage
