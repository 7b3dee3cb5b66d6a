package service

import (
	"context"
	"fmt"
	"os"

	"github.com/jebin2/hfsync/internal/db"
	"github.com/jebin2/hfsync/internal/logging"
)

func (s *Service) Upload(ctx context.Context, localPath, repoPath string) error {
	logging.Infof("Uploading %s -> %s", localPath, repoPath)
	if err := s.client.Upload(ctx, localPath, repoPath); err != nil {
		logging.Error("Upload failed", err)
		return err
	}
	logging.Successf("Uploaded: %s", repoPath)
	s.record(ctx, db.OpUpload, localPath, repoPath)
	return nil
}

func (s *Service) UploadFolder(ctx context.Context, localDir, repoBase string) error {
	logging.Infof("Uploading folder: %s", localDir)
	if err := s.client.UploadFolder(ctx, localDir, repoBase); err != nil {
		logging.Error("Upload folder failed", err)
		return err
	}
	logging.Success("Folder upload completed!")
	s.record(ctx, db.OpUpload, localDir, repoBase)
	return nil
}

func (s *Service) Download(ctx context.Context, repoPath, localPath string) error {
	logging.Infof("Downloading %s -> %s", repoPath, localPath)
	if err := s.client.Download(ctx, repoPath, localPath); err != nil {
		logging.Error("Download failed", err)
		return err
	}
	logging.Successf("Downloaded to: %s", localPath)
	s.record(ctx, db.OpDownload, localPath, repoPath)
	return nil
}

func (s *Service) List(ctx context.Context) error {
	logging.Info("Fetching file list...")
	files, err := s.client.List(ctx)
	if err != nil {
		logging.Error("Failed to list files", err)
		return err
	}
	logging.Successf("Found %d files:", len(files))
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, repoPath string) error {
	logging.Infof("Deleting %s", repoPath)
	if err := s.client.Delete(ctx, repoPath); err != nil {
		logging.Error("Delete failed", err)
		return err
	}
	logging.Successf("Deleted: %s", repoPath)
	s.record(ctx, db.OpDelete, "", repoPath)
	return nil
}

// record keeps the transfer history best effort; a failed insert never fails
// the operation that already succeeded remotely.
func (s *Service) record(ctx context.Context, op, localPath, repoPath string) {
	var size int64
	if localPath != "" {
		if info, err := os.Stat(localPath); err == nil && info.Mode().IsRegular() {
			size = info.Size()
		}
	}
	err := s.db.RecordTransfer(ctx, db.Transfer{
		Operation:  op,
		LocalPath:  localPath,
		RemotePath: repoPath,
		SizeBytes:  size,
	})
	if err != nil {
		logging.Debugf("Could not record transfer: %s", err)
	}
}
