package memory

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/parallel-yonder/yonder/store"
)

var _ store.MemberStore = (*Store)(nil)

func (s *Store) Member(_ context.Context, guildID discord.GuildID, userID discord.UserID) (discord.Member, error) {
	s.membersMu.RLock()
	defer s.membersMu.RUnlock()

	m, ok := s.members[memberKey{guildID, userID}]
	if !ok {
		return discord.Member{}, store.ErrNotFound
	}
	return *m, nil
}

func (s *Store) Members(_ context.Context, guildID discord.GuildID) (ms []discord.Member, err error) {
	s.membersMu.RLock()
	defer s.membersMu.RUnlock()

	ids, ok := s.guildMembers[guildID]
	if !ok || len(ids) == 0 {
		return nil, store.ErrNotFound
	}

	for _, id := range ids {
		m, ok := s.members[memberKey{guildID, id}]
		if ok {
			ms = append(ms, *m)
		}
	}

	return ms, nil
}

func (s *Store) MemberExists(_ context.Context, guildID discord.GuildID, userID discord.UserID) (bool, error) {
	s.membersMu.RLock()
	defer s.membersMu.RUnlock()

	_, ok := s.members[memberKey{guildID, userID}]
	return ok, nil
}

func (s *Store) SetMember(_ context.Context, guildID discord.GuildID, m discord.Member) error {
	s.membersMu.Lock()
	defer s.membersMu.Unlock()

	s.setMember(guildID, m)
	return nil
}

func (s *Store) SetMembers(_ context.Context, guildID discord.GuildID, ms []discord.Member) error {
	s.membersMu.Lock()
	defer s.membersMu.Unlock()

	for i := range ms {
		s.setMember(guildID, ms[i])
	}
	return nil
}

// setMember must be called with membersMu held.
func (s *Store) setMember(guildID discord.GuildID, m discord.Member) {
	s.members[memberKey{guildID, m.User.ID}] = &m

	if !contains(s.guildMembers[guildID], m.User.ID) {
		s.guildMembers[guildID] = append(s.guildMembers[guildID], m.User.ID)
	}
}

func (s *Store) DeleteMember(_ context.Context, guildID discord.GuildID, userID discord.UserID) error {
	s.membersMu.Lock()
	defer s.membersMu.Unlock()

	delete(s.members, memberKey{guildID, userID})
	s.guildMembers[guildID] = remove(s.guildMembers[guildID], userID)

	return nil
}
