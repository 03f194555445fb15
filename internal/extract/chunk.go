package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

const (
	// minChunkBodyLen gates the whole strategy: short bodies are served
	// better by the other extractors or the fallback.
	minChunkBodyLen = 500

	// minParagraphLen drops transitional paragraphs with no real content.
	minParagraphLen = 100

	// maxChunks bounds how many paragraphs one body may contribute.
	maxChunks = 6

	maxChunkTitleLen = 120

	// minSentenceTitleLen decides whether a paragraph's first sentence can
	// serve as the draft title.
	minSentenceTitleLen = 8
)

var (
	blankLineRe     = regexp.MustCompile(`\n\s*\n`)
	sentenceSplitRe = regexp.MustCompile(`[.!?\n]`)
)

// Chunks splits a long body on blank-line boundaries and turns substantial
// paragraphs into drafts. Bodies shorter than 500 characters yield nothing.
// Each draft titles itself from the paragraph's first sentence when that
// sentence is usable, falling back to "{issueTitle} - part {n}".
func Chunks(body, issueTitle string) []types.TaskDraft {
	if textnorm.Length(body) < minChunkBodyLen {
		return nil
	}
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	var drafts []types.TaskDraft
	for _, para := range blankLineRe.Split(normalized, -1) {
		cleaned := textnorm.Clean(para)
		if textnorm.Length(cleaned) < minParagraphLen {
			continue
		}
		n := len(drafts) + 1
		drafts = append(drafts, types.TaskDraft{
			Title:       chunkTitle(para, issueTitle, n),
			Description: textnorm.Truncate(cleaned, maxDescriptionLen),
			Origin:      types.OriginChunk,
			Status:      types.StatusOpen,
		})
		if len(drafts) == maxChunks {
			break
		}
	}
	return drafts
}

// chunkTitle picks a title for the n-th kept paragraph: its first sentence
// when long enough, otherwise a positional title derived from the issue.
func chunkTitle(para, issueTitle string, n int) string {
	sentence := textnorm.Clean(sentenceSplitRe.Split(para, 2)[0])
	switch {
	case textnorm.Length(sentence) >= minSentenceTitleLen:
		return textnorm.Truncate(sentence, maxChunkTitleLen)
	case textnorm.Clean(issueTitle) != "":
		return textnorm.Truncate(fmt.Sprintf("%s - part %d", textnorm.Clean(issueTitle), n), maxChunkTitleLen)
	default:
		return fmt.Sprintf("Task %d", n)
	}
}
