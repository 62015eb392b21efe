package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/slack-go/slack"
)

// PostReport uploads the report file to the report channel with a headline
// comment.
func PostReport(api *slack.Client, cfg Config, path, headline string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stating report file: %w", err)
	}
	if fi.Size() <= 0 {
		return fmt.Errorf("report file is empty: %s", path)
	}

	_, err = api.UploadFileV2(slack.UploadFileV2Parameters{
		File:           path,
		FileSize:       int(fi.Size()),
		Filename:       filepath.Base(path),
		Channel:        cfg.ReportChannelID,
		Title:          fmt.Sprintf("%s rework report", cfg.TeamName),
		InitialComment: headline,
	})
	if err != nil {
		return fmt.Errorf("uploading report file: %w", err)
	}
	log.Printf("report posted channel=%s file=%s", cfg.ReportChannelID, filepath.Base(path))
	return nil
}

// PostMessage sends a plain text message to the report channel.
func PostMessage(api *slack.Client, cfg Config, text string) error {
	_, _, err := api.PostMessage(cfg.ReportChannelID, slack.MsgOptionText(text, false))
	return err
}
