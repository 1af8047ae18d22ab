package storage

import "errors"

// ErrDuplicatePlaylist is returned when importing a playlist id that
// already exists in the collection.
var ErrDuplicatePlaylist = errors.New("playlist already imported")

// LoadPlaylists reads playlists from disk
func (s *Storage) LoadPlaylists() (*PlaylistStore, error) {
	store := PlaylistStore{Playlists: []Playlist{}}
	err := s.loadJSONWithRecovery("playlists.json", &store)
	return &store, err
}

// SavePlaylists writes playlists to disk
func (s *Storage) SavePlaylists(store *PlaylistStore) error {
	return s.writeJSONAtomic("playlists.json", store)
}

// HasPlaylist reports whether a playlist with the given external id is
// already in the collection.
func (s *Storage) HasPlaylist(id string) (bool, error) {
	store, err := s.LoadPlaylists()
	if err != nil {
		return false, err
	}
	for _, p := range store.Playlists {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// AddPlaylist appends an imported playlist snapshot. The external id is
// the de-duplication key; a known id fails with ErrDuplicatePlaylist and
// leaves the collection unchanged.
func (s *Storage) AddPlaylist(playlist Playlist) error {
	store, err := s.LoadPlaylists()
	if err != nil {
		return err
	}

	for _, p := range store.Playlists {
		if p.ID == playlist.ID {
			return ErrDuplicatePlaylist
		}
	}

	playlist.Expanded = false
	store.Playlists = append(store.Playlists, playlist)

	return s.SavePlaylists(store)
}

// ToggleVideoWatched flips the watched flag of one video inside one
// playlist. Unknown playlist or video ids are silent no-ops.
func (s *Storage) ToggleVideoWatched(playlistID, videoID string) error {
	store, err := s.LoadPlaylists()
	if err != nil {
		return err
	}

	for i := range store.Playlists {
		if store.Playlists[i].ID != playlistID {
			continue
		}
		for j := range store.Playlists[i].Videos {
			if store.Playlists[i].Videos[j].ID == videoID {
				store.Playlists[i].Videos[j].Completed = !store.Playlists[i].Videos[j].Completed
				return s.SavePlaylists(store)
			}
		}
		return nil
	}

	return nil
}

// TogglePlaylistExpanded flips the persisted expansion flag. An unknown
// id is a silent no-op.
func (s *Storage) TogglePlaylistExpanded(playlistID string) error {
	store, err := s.LoadPlaylists()
	if err != nil {
		return err
	}

	for i := range store.Playlists {
		if store.Playlists[i].ID == playlistID {
			store.Playlists[i].Expanded = !store.Playlists[i].Expanded
			return s.SavePlaylists(store)
		}
	}

	return nil
}

// DeletePlaylist removes a playlist. An unknown id is a silent no-op.
func (s *Storage) DeletePlaylist(playlistID string) error {
	store, err := s.LoadPlaylists()
	if err != nil {
		return err
	}

	for i := range store.Playlists {
		if store.Playlists[i].ID == playlistID {
			store.Playlists = append(store.Playlists[:i], store.Playlists[i+1:]...)
			return s.SavePlaylists(store)
		}
	}

	return nil
}
