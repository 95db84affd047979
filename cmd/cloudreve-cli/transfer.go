package main

import (
	"fmt"
	"io"
	"os"
	gopath "path"

	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <local file> <remote path>",
	Short: "Upload a file",
	Long: `Upload a local file in chunks. The server's upload session dictates
the chunk size; when it does not, upload.chunk_size from the config
applies. Chunks go out sequentially, one request each, and a failed
chunk aborts the upload.`,
	Args: cobra.ExactArgs(2),
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	localPath, remotePath := args[0], args[1]

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", localPath)
	}

	// A remote path ending in / means "into this directory".
	if remotePath == "" || remotePath[len(remotePath)-1] == '/' {
		remotePath = gopath.Join(remotePath, gopath.Base(localPath))
	}

	ticket, err := client.CreateUploadSession(cmd.Context(), remotePath, info.Size(), nil)
	if err != nil {
		return err
	}

	chunkSize := ticket.ChunkSize
	if chunkSize <= 0 {
		chunkSize = cfg.Upload.ChunkSize
	}
	logger.Debug().
		Str("session", ticket.SessionID).
		Int64("chunk_size", chunkSize).
		Int64("size", info.Size()).
		Msg("upload session opened")

	buf := make([]byte, chunkSize)
	sent := int64(0)
	for index := 0; sent < info.Size(); index++ {
		n, err := io.ReadFull(f, buf)
		if err == io.ErrUnexpectedEOF {
			err = nil
		}
		if err != nil {
			return fmt.Errorf("failed to read chunk %d: %w", index, err)
		}

		if err := client.UploadChunk(cmd.Context(), ticket.SessionID, index, buf[:n]); err != nil {
			return fmt.Errorf("chunk %d failed: %w", index, err)
		}
		sent += int64(n)
		fmt.Printf("\rUploading %s: %s / %s", remotePath, formatSize(sent), formatSize(info.Size()))
	}
	fmt.Println()

	logger.Info().Str("path", remotePath).Int64("size", info.Size()).Msg("upload finished")
	return nil
}

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download <remote path>",
	Short: "Print a temporary download URL for a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownload,
}

func runDownload(cmd *cobra.Command, args []string) error {
	url, err := client.DownloadURL(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}
