package viewmodel

import (
	"context"
	"sync"
	"time"

	"github.com/formfighter/ringside/internal/deeplink"
	"github.com/formfighter/ringside/internal/identity"
	"github.com/formfighter/ringside/internal/notify"
	"github.com/formfighter/ringside/internal/services/challenge"
)

const defaultToastDuration = 3 * time.Second

// ViewModel orchestrates the challenge view: it mirrors the service's
// snapshot pushes into published state, drives create/invite workflows,
// and paginates the event feed.
//
// All published-state mutation happens on a single internal goroutine.
// Operations enqueue closures onto that loop and block until they ran,
// so the state is never touched from two goroutines at once.
type ViewModel struct {
	svc           challenge.Service
	identity      identity.Provider
	toastDuration time.Duration

	ops  chan func()
	quit chan struct{}

	// Owned by the loop goroutine. Never touch off-loop.
	state      State
	toastToken int

	cancelSub func()
	cancelBus func()

	closeOnce sync.Once
}

// New creates a challenge view-model, subscribes it to the service's
// snapshot stream, and starts its state loop.
func New(cfg *Config) (*ViewModel, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ChallengeService == nil {
		return nil, ErrNilService
	}

	if cfg.Identity == nil {
		return nil, ErrNilIdentity
	}

	toastDuration := cfg.ToastDuration
	if toastDuration <= 0 {
		toastDuration = defaultToastDuration
	}

	vm := &ViewModel{
		svc:           cfg.ChallengeService,
		identity:      cfg.Identity,
		toastDuration: toastDuration,
		ops:           make(chan func()),
		quit:          make(chan struct{}),
	}

	go vm.run()

	// Snapshot delivery is scoped to the signed-in user
	if user, ok := cfg.Identity.Current(); ok {
		snapshots, cancelSub := cfg.ChallengeService.Subscribe(user.ID)
		vm.cancelSub = cancelSub
		go vm.consumeSnapshots(snapshots)
	}

	if cfg.Bus != nil {
		notifications, cancelBus := cfg.Bus.Subscribe(notify.NameOpenChallenge)
		vm.cancelBus = cancelBus
		go vm.consumeNotifications(notifications)
	}

	return vm, nil
}

// Close tears down the subscriptions and stops the state loop
func (vm *ViewModel) Close() {
	vm.closeOnce.Do(func() {
		if vm.cancelSub != nil {
			vm.cancelSub()
		}
		if vm.cancelBus != nil {
			vm.cancelBus()
		}
		close(vm.quit)
	})
}

// State returns a copy of the published state, taken on the state loop
func (vm *ViewModel) State() State {
	var snapshot State
	vm.dispatch(func() {
		snapshot = vm.state
	})
	return snapshot
}

// CreateChallenge builds and persists a new challenge for the signed-in
// user. The error is both published for display and returned, so a
// creation form can stay open on failure.
func (vm *ViewModel) CreateChallenge(ctx context.Context, name, description string) error {
	var blocked bool
	vm.dispatch(func() {
		blocked = vm.state.ActiveChallenge != nil
		vm.state.IsLoading = true
	})
	defer vm.dispatch(func() {
		vm.state.IsLoading = false
	})

	user, ok := vm.identity.Current()
	if !ok || blocked {
		err := challenge.ErrAlreadyInChallenge
		vm.setError(err)
		return err
	}

	_, err := vm.svc.CreateChallenge(ctx, &challenge.CreateChallengeInput{
		CreatorID:   user.ID,
		CreatorName: user.Name,
		Name:        name,
		Description: description,
	})
	if err != nil {
		vm.setError(err)
		return err
	}

	vm.showToast("Challenge created!")
	return nil
}

// ProcessInvite joins the signed-in user onto an invited challenge. Any
// failure clears the staged invite so a bad link leaves no stale state.
func (vm *ViewModel) ProcessInvite(ctx context.Context, challengeID, referrerID string) error {
	user, ok := vm.identity.Current()
	if !ok || user.Name == "" {
		vm.svc.ClearPendingChallenge()
		err := challenge.ErrInvalidChallenge
		vm.setError(err)
		return err
	}

	vm.dispatch(func() {
		vm.state.IsLoading = true
	})
	defer vm.dispatch(func() {
		vm.state.IsLoading = false
	})

	_, err := vm.svc.HandleInvite(ctx, &challenge.HandleInviteInput{
		ChallengeID: challengeID,
		UserID:      user.ID,
		UserName:    user.Name,
		ReferrerID:  referrerID,
	})
	if err != nil {
		vm.svc.ClearPendingChallenge()
		vm.setError(err)
		return err
	}

	vm.showToast("You're in! Good luck.")
	return nil
}

// HandleDeepLink stages the invite a challenge link carries. With a
// signed-in user it is processed immediately; otherwise it stays staged
// until ProcessPendingInvite runs after sign-in.
func (vm *ViewModel) HandleDeepLink(ctx context.Context, raw string) error {
	link, err := deeplink.Parse(raw)
	if err != nil {
		return err
	}

	vm.svc.SetPendingChallenge(&challenge.SetPendingChallengeInput{
		ChallengeID: link.ChallengeID,
		ReferrerID:  link.ReferrerID,
	})

	if _, ok := vm.identity.Current(); !ok {
		return nil
	}
	return vm.ProcessPendingInvite(ctx)
}

// ProcessPendingInvite consumes the staged invite, if any. Success and
// failure both leave no staged state behind.
func (vm *ViewModel) ProcessPendingInvite(ctx context.Context) error {
	pending, ok := vm.svc.PendingChallenge()
	if !ok {
		return nil
	}

	if err := vm.ProcessInvite(ctx, pending.ChallengeID, pending.ReferrerID); err != nil {
		return err
	}

	vm.svc.ClearPendingChallenge()
	return nil
}

// ShareChallenge produces the deep link for the active challenge
func (vm *ViewModel) ShareChallenge() (string, bool) {
	var challengeID string
	vm.dispatch(func() {
		if vm.state.ActiveChallenge != nil {
			challengeID = vm.state.ActiveChallenge.ID
		}
	})

	if challengeID == "" {
		return "", false
	}
	return deeplink.Build(challengeID), true
}

// LoadMoreEvents fetches the next page of feed events older than the
// oldest one held and appends it. Failures are absorbed: pagination
// simply stops instead of interrupting the view.
func (vm *ViewModel) LoadMoreEvents(ctx context.Context) {
	var (
		challengeID string
		before      time.Time
		proceed     bool
	)
	vm.dispatch(func() {
		st := &vm.state
		if st.IsLoadingMoreEvents || !st.HasMoreEvents || st.ActiveChallenge == nil {
			return
		}
		held := st.ActiveChallenge.RecentEvents
		if len(held) == 0 {
			// Nothing to paginate from
			return
		}

		st.IsLoadingMoreEvents = true
		challengeID = st.ActiveChallenge.ID
		before = held[len(held)-1].Timestamp
		proceed = true
	})

	if !proceed {
		return
	}

	out, err := vm.svc.LoadMoreEvents(ctx, &challenge.LoadMoreEventsInput{
		ChallengeID: challengeID,
		Before:      before,
	})

	vm.dispatch(func() {
		st := &vm.state
		st.IsLoadingMoreEvents = false
		if err != nil {
			st.HasMoreEvents = false
			return
		}

		// Append only; a snapshot push may have replaced the challenge
		// in the meantime, in which case the page and its exhaustion
		// signal belong to the old challenge and are dropped together.
		if st.ActiveChallenge != nil && st.ActiveChallenge.ID == challengeID {
			st.ActiveChallenge.RecentEvents = append(st.ActiveChallenge.RecentEvents, out.Events...)
			st.HasMoreEvents = out.HasMore
		}
	})
}

// RefreshChallenge re-establishes the realtime subscription for the
// signed-in user, e.g. when the view becomes visible again.
func (vm *ViewModel) RefreshChallenge(ctx context.Context) error {
	user, ok := vm.identity.Current()
	if !ok {
		err := challenge.ErrInvalidChallenge
		vm.setError(err)
		return err
	}

	err := vm.svc.StartListening(ctx, &challenge.StartListeningInput{
		UserID: user.ID,
	})
	if err != nil {
		vm.setError(err)
		return err
	}

	return nil
}

// run is the state loop. It is the only goroutine that touches vm.state.
func (vm *ViewModel) run() {
	for {
		select {
		case fn := <-vm.ops:
			fn()
		case <-vm.quit:
			return
		}
	}
}

// dispatch runs fn on the state loop and waits for it to finish
func (vm *ViewModel) dispatch(fn func()) {
	done := make(chan struct{})
	wrapped := func() {
		fn()
		close(done)
	}

	select {
	case vm.ops <- wrapped:
	case <-vm.quit:
		return
	}

	select {
	case <-done:
	case <-vm.quit:
	}
}

// consumeSnapshots mirrors every service push into published state.
// The latest push is authoritative; an absent active challenge is a
// valid state and replaces the local value like any other.
func (vm *ViewModel) consumeSnapshots(snapshots <-chan challenge.Snapshot) {
	for snap := range snapshots {
		vm.dispatch(func() {
			vm.state.ActiveChallenge = snap.ActiveChallenge
			vm.state.CompletedChallenges = snap.CompletedChallenges
			vm.state.HasMoreEvents = snap.ActiveChallenge != nil
		})
	}
}

// consumeNotifications reacts to open-challenge broadcasts
func (vm *ViewModel) consumeNotifications(notifications <-chan notify.Notification) {
	for range notifications {
		_ = vm.RefreshChallenge(context.Background())
	}
}

// setError publishes a failure for display
func (vm *ViewModel) setError(err error) {
	vm.dispatch(func() {
		vm.state.Err = err
	})
}

// showToast displays a transient message and schedules its auto-hide.
// Each display takes a fresh token; the hide only fires if no newer
// toast has replaced it in the meantime.
func (vm *ViewModel) showToast(message string) {
	vm.dispatch(func() {
		vm.toastToken++
		token := vm.toastToken

		vm.state.Toast = Toast{Message: message, Visible: true}

		time.AfterFunc(vm.toastDuration, func() {
			vm.dispatch(func() {
				if vm.toastToken == token {
					vm.state.Toast.Visible = false
				}
			})
		})
	})
}
