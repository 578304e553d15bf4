package models

// Puzzle is one day's clue bundle. Records are supplied by the dataset and
// never modified after load. In dataset files the date key is stored as
// "id".
type Puzzle struct {
	DateKey        string `json:"id" yaml:"id"`
	TargetYear     int    `json:"targetYear" yaml:"targetYear"`
	Clue           string `json:"clue" yaml:"clue"`
	Category       string `json:"category" yaml:"category"`
	FunFact        string `json:"funFact" yaml:"funFact"`
	ArticleTitle   string `json:"articleTitle" yaml:"articleTitle"`
	ArticleContent string `json:"articleContent" yaml:"articleContent"`
}
