// Package storage persists users, Riot accounts and the skin catalog cache
// in Redis. Records are plain JSON blobs keyed by id; the only invariant the
// package enforces is the lazy identity contract on Account: reading an
// identity field that has not been learned yet yields a
// ProfileRefreshRequiredError instead of an empty value.
package storage
