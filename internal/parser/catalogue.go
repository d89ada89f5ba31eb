package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// The chapter heading catalogue. Patterns accumulated from the formatting
// conventions seen in the wild; tried top to bottom, first match wins.
var (
	// 第12章 标题 / 第3卷 标题
	headingDecimalRE = regexp.MustCompile(`^第(\d{1,6})([章卷])\s*(.*)$`)
	// 第十二章 标题 / 第一百零五卷
	headingCJKRE = regexp.MustCompile(`^第([零〇一二两三四五六七八九十百千万]{1,12})([章卷])\s*(.*)$`)
	// 12.标题
	headingListRE = regexp.MustCompile(`^(\d{1,6})\.\s*(\S.*)$`)
	// 章节:标题
	headingLabelRE = regexp.MustCompile(`^章节[:：]\s*(.*)$`)
	// 正文 第12章 标题 — heading buried at the end of a longer line.
	headingTailRE = regexp.MustCompile(`第(\d{1,6})章\s*(.*)$`)
)

// Header field labels, also ordered. Author precedence is fixed at
// catalogue order: the first pattern that matches a line wins and author
// scanning stops for the rest of the document.
var (
	titleLabelRE   = regexp.MustCompile(`^(?:书名|标题|[Tt]itle)[:：]\s*(.*)$`)
	authorLabelREs = []*regexp.Regexp{
		regexp.MustCompile(`^作者[:：]\s*(.*)$`),
		regexp.MustCompile(`^[Aa]uthor[:：]\s*(.*)$`),
		regexp.MustCompile(`^【作者】\s*(.*)$`),
	}
	summaryLabelRE = regexp.MustCompile(`^(?:简介|内容简介|介绍|[Ss]ummary|[Ii]ntro(?:duction)?)[:：]\s*(.*)$`)

	// A rule line of three or more repeated separator characters.
	separatorRE = regexp.MustCompile(`^(?:={3,}|-{3,}|\*{3,}|\+{3,}|_{3,})$`)
	// The fallback segmenter also splits on bare = runs.
	fallbackSeparatorRE = regexp.MustCompile(`^(?:=+|-{3,}|\*{3,}|\+{3,})$`)
)

// The tail pattern is a last-resort catch-all; prose mentioning a chapter
// mid-sentence must not become a heading, so it only fires on short lines.
const maxTailHeadingRunes = 30

type headingMatch struct {
	number int
	title  string
}

// matchHeading runs the catalogue against one trimmed line. nextNumber is
// the ordinal to assign when a pattern carries no ordinal of its own.
// An empty title capture is replaced by the literal heading prefix
// (e.g. "第3章") so chapter titles are never empty.
func matchHeading(line string, nextNumber int) (headingMatch, bool) {
	if m := headingDecimalRE.FindStringSubmatch(line); m != nil {
		n, _ := strconv.Atoi(m[1])
		return headingMatch{number: n, title: headingTitle(m[3], "第"+m[1]+m[2])}, true
	}
	if m := headingCJKRE.FindStringSubmatch(line); m != nil {
		return headingMatch{number: parseCJKNumber(m[1]), title: headingTitle(m[3], "第"+m[1]+m[2])}, true
	}
	if m := headingListRE.FindStringSubmatch(line); m != nil {
		n, _ := strconv.Atoi(m[1])
		return headingMatch{number: n, title: m[2]}, true
	}
	if m := headingLabelRE.FindStringSubmatch(line); m != nil {
		return headingMatch{number: nextNumber, title: headingTitle(m[1], fmt.Sprintf("第%d章", nextNumber))}, true
	}
	if utf8.RuneCountInString(line) <= maxTailHeadingRunes {
		if m := headingTailRE.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			return headingMatch{number: n, title: headingTitle(m[2], "第"+m[1]+"章")}, true
		}
	}
	return headingMatch{}, false
}

func headingTitle(captured, prefix string) string {
	captured = strings.TrimSpace(captured)
	if captured == "" {
		return prefix
	}
	return captured
}

func matchAuthor(line string) (string, bool) {
	for _, re := range authorLabelREs {
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
