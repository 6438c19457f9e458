// Package dataset supplies filename batches to the harness: either
// the built-in demonstration set or a newline-separated list file.
// Reading a list file is harness input only; nothing here walks a
// filesystem or touches the named files.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

// Demonstration returns the built-in sample batch: a representative
// mix of documents, media, audio, video, archives, source code, and
// unclassifiable names. The slice is a fresh copy on every call.
func Demonstration() []string {
	return []string{
		// Documents
		"project_proposal.docx",
		"technical_specification.pdf",
		"meeting_minutes.txt",
		"user_manual.doc",
		"requirements_document.rtf",

		// Multimedia
		"corporate_logo.png",
		"presentation_slide.jpg",
		"infographic_design.gif",
		"website_banner.jpeg",
		"icon_collection.bmp",

		// Audio
		"conference_recording.mp3",
		"podcast_episode.wav",
		"training_audio.flac",
		"notification_sound.aac",

		// Video
		"training_video.mp4",
		"presentation_demo.avi",
		"tutorial_content.mkv",
		"promotional_video.mov",

		// Archives
		"backup_archive.zip",
		"software_package.rar",
		"data_backup.7z",
		"system_files.tar",

		// Source code
		"main_application.cpp",
		"utility_functions.c",
		"data_processor.py",
		"web_interface.html",
		"style_definitions.js",

		// Unclassified
		"readme_file",
		"configuration.ini",
		"database_schema.sql",
		"log_entries.log",
		"system_preferences.cfg",
	}
}

// LoadList reads a newline-separated filename list. Blank lines and
// lines starting with '#' are skipped; surrounding whitespace is
// trimmed. A missing file maps to filetriage.ErrInputNotFound.
func LoadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, filetriage.ErrInputNotFound)
		}
		return nil, fmt.Errorf("reading filename list %s: %w", path, err)
	}
	defer f.Close()

	var filenames []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		filenames = append(filenames, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading filename list %s: %w", path, err)
	}
	return filenames, nil
}
