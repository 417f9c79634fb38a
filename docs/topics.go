// Package docs holds the cfc user manual, one markdown file per topic.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic that lists all the others.
const index = "readme"

// Topic is an entry of the manual index.
type Topic struct {
	Name    string
	Summary string
}

// topicLine matches the "* name: summary" lines of the index.
var topicLine = regexp.MustCompile(`^\*\s+([^:]+):(.*)$`)

// Topics returns the topics listed in the manual index, in order.
func Topics() ([]Topic, error) {
	content, err := docs.ReadFile(index + ".md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		if m := topicLine.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Summary: strings.TrimSpace(m[2])})
		}
	}
	return topics, scanner.Err()
}

// GetTopic returns the content of a documentation topic, "*" stands for all of them.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see 'cfc topic' for the list", topic)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		if topic != "*" {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of all the topics but the index.
func GetAllTopics() ([]string, error) {
	entries, err := docs.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || e.IsDir() || name == index {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics, nil
}
