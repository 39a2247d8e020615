package readably_test

import (
	"fmt"

	"github.com/kettle-labs/readably"
)

const exampleHTML = `<html><head><title>Article Title</title></head><body><header><nav><ul><li><a href="#">Home</a></li><li><a href="#">About</a></li></ul></nav></header><main><article><h1>Article Title</h1><p>This is a test paragraph with enough text to be considered relevant content by the scoring algorithm. We need to ensure that this paragraph has sufficient length to be scored highly by the content extraction algorithm. The algorithm looks for blocks of text that appear to be the main content of the page, as opposed to navigation, headers, footers, or other ancillary content.</p><p>Adding another paragraph increases the content score for this article element, making it more likely to be identified as the main content of the page.</p></article></main><footer><p>Copyright 2025</p></footer></body></html>`

func ExampleNew() {
	r, err := readably.New(exampleHTML)
	if err != nil {
		fmt.Printf("Error parsing HTML: %v\n", err)
		return
	}

	data, err := r.ExtractReadabilityData(false)
	if err != nil {
		fmt.Printf("Error extracting article: %v\n", err)
		return
	}

	fmt.Printf("Title: %s\n", data.Title)
	// Output: Title: Article Title
}

func ExampleWithCleanConditionally() {
	r, err := readably.New(exampleHTML, readably.WithCleanConditionally(false))
	if err != nil {
		fmt.Printf("Error parsing HTML: %v\n", err)
		return
	}

	data, err := r.ExtractReadabilityData(false)
	if err != nil {
		fmt.Printf("Error extracting article: %v\n", err)
		return
	}

	fmt.Printf("Title: %s\n", data.Title)
	// Output: Title: Article Title
}
