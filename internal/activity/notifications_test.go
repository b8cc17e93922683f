package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/inquiry"
)

func TestRecentStatusChanges(t *testing.T) {
	accepted := application.Application{ID: common.NewUUID(), Status: application.StatusAccepted}
	rejected := application.Application{ID: common.NewUUID(), Status: application.StatusRejected}
	pending := application.Application{ID: common.NewUUID(), Status: application.StatusPending}

	out := RecentStatusChanges([]application.Application{accepted, rejected, pending}, nil)
	require.Len(t, out, 2)
	assert.Equal(t, accepted.ID, out[0].ID)
	assert.Equal(t, rejected.ID, out[1].ID)
}

func TestRecentStatusChangesDismissed(t *testing.T) {
	accepted := application.Application{ID: common.NewUUID(), Status: application.StatusAccepted}
	rejected := application.Application{ID: common.NewUUID(), Status: application.StatusRejected}
	dismissed := map[common.UUID]struct{}{accepted.ID: {}}

	out := RecentStatusChanges([]application.Application{accepted, rejected}, dismissed)
	require.Len(t, out, 1)
	assert.Equal(t, rejected.ID, out[0].ID)

	// Dismissal never touches the application itself.
	assert.Equal(t, application.StatusAccepted, accepted.Status)
}

func TestPendingInquiries(t *testing.T) {
	pending := inquiry.Inquiry{ID: common.NewUUID(), Status: inquiry.StatusPending}
	answered := inquiry.Inquiry{ID: common.NewUUID(), Status: inquiry.StatusAccepted}
	hidden := inquiry.Inquiry{ID: common.NewUUID(), Status: inquiry.StatusPending}

	out := PendingInquiries([]inquiry.Inquiry{pending, answered, hidden}, map[common.UUID]struct{}{hidden.ID: {}})
	require.Len(t, out, 1)
	assert.Equal(t, pending.ID, out[0].ID)
}

func TestDismissalStoreSessionScoped(t *testing.T) {
	store := NewDismissalStore()
	id := common.NewUUID()

	store.Dismiss("session-a", id)

	_, ok := store.Set("session-a")[id]
	assert.True(t, ok)
	_, ok = store.Set("session-b")[id]
	assert.False(t, ok, "dismissal must not leak across sessions")
}

func TestDismissalStoreSetReturnsCopy(t *testing.T) {
	store := NewDismissalStore()
	id := common.NewUUID()
	store.Dismiss("s", id)

	set := store.Set("s")
	delete(set, id)

	_, ok := store.Set("s")[id]
	assert.True(t, ok, "mutating the returned set must not affect the store")
}

func TestDismissalStoreDrop(t *testing.T) {
	store := NewDismissalStore()
	id := common.NewUUID()
	store.Dismiss("s", id)
	store.Drop("s")
	assert.Empty(t, store.Set("s"))
}
