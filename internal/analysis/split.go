package analysis

import "github.com/akeller/spotify-history-tools/internal/history"

// MusicPodcastSplit sums listening per class. PodcastRatio is podcast hours
// over total hours, defined as 0 when the dataset is empty.
type MusicPodcastSplit struct {
	MusicHours   float64 `yaml:"music_hours"`
	PodcastHours float64 `yaml:"podcast_hours"`
	PodcastRatio float64 `yaml:"podcast_ratio"`
}

// ComputeMusicPodcastSplit classifies every event as music or podcast and
// sums duration per class.
func ComputeMusicPodcastSplit(events []history.PlayEvent) MusicPodcastSplit {
	var musicMs, podcastMs int64
	for _, e := range events {
		if e.IsPodcast() {
			podcastMs += e.MsPlayed
		} else {
			musicMs += e.MsPlayed
		}
	}

	split := MusicPodcastSplit{
		MusicHours:   msToHours(musicMs),
		PodcastHours: msToHours(podcastMs),
	}
	if total := split.MusicHours + split.PodcastHours; total > 0 {
		split.PodcastRatio = split.PodcastHours / total
	}
	return split
}
