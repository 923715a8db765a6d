// Package domain defines the core business entities and errors:
// users, vocabulary groups and words, and the per-word training
// progress records that drive spaced-repetition scheduling.
package domain
