package metric

import "strings"

// Keyword inventories shared across the heuristic scorers.
var (
	datasetKeywords = []string{
		"dataset", "data set", "corpus", "benchmark", "training data",
		"training set", "validation set", "test set", "corpora",
		"data collection", "data source", "training corpus", "evaluation data",
	}

	knownDatasets = []string{
		"imagenet", "coco", "mnist", "cifar", "squad", "glue",
		"commonsenseqa", "wikitext", "librispeech", "laion", "pile", "kitti",
		"bookcorpus", "wikipedia", "book corpus", "common crawl", "oscar",
		"openwebtext", "cc-news", "gutenberg", "open subtitles", "arxiv",
		"pubmed", "stack exchange", "reddit",
	}

	onboardingKeywords = []string{
		"install", "usage", "example", "quickstart", "tutorial",
	}

	testKeywords = []string{
		"pytest", "unittest", "unit test", "integration test", "tests/",
	}

	ciKeywords = []string{
		"github actions", "workflow", "ci", "travis", "circleci",
		"appveyor", "build status", "badge",
	}

	lintKeywords = []string{
		"pylint", "flake8", "ruff", "black", "isort", "pre-commit",
	}

	typingKeywords = []string{
		"mypy", "type hints", "typed",
	}

	docsKeywords = []string{
		"docs/", "documentation", "readthedocs", "api reference",
	}

	strongClaimKeywords = []string{
		"state-of-the-art", "sota", "breakthrough", "record", "champion", "winner",
	}

	moderateClaimKeywords = []string{
		"best performance", "highest accuracy", "outperforms", "beats",
		"exceeds", "achieves", "surpasses", "top-1", "top-5", "leading",
	}

	weakClaimKeywords = []string{
		"good", "better", "improved", "optimized", "efficient",
		"effective", "fast", "robust",
	}
)

// containsAny reports whether any needle appears in text (case-insensitive).
func containsAny(text string, needles []string) bool {
	t := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(t, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
