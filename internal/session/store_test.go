package session_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Radek987976/hyperbare-manager/internal/clients/gmao"
	"github.com/Radek987976/hyperbare-manager/internal/entity"
	"github.com/Radek987976/hyperbare-manager/internal/mocks"
	"github.com/Radek987976/hyperbare-manager/internal/repository"
	"github.com/Radek987976/hyperbare-manager/internal/session"
)

var adminUser = entity.User{ID: "u1", Email: "a@b.c", Nom: "N", Prenom: "P", Role: entity.RoleAdmin}

func newRepo(t *testing.T) *repository.Session {
	t.Helper()

	repo, err := repository.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestStore_BootstrapEmpty(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	store := session.New(repo, nil)

	require.True(t, store.Snapshot().Loading)

	require.NoError(t, store.Bootstrap(context.Background()))

	state := store.Snapshot()
	require.False(t, state.Loading)
	require.Nil(t, state.User)
	require.Equal(t, entity.RoleInvite, state.Permissions.Role)
	require.False(t, store.IsAuthenticated())
}

func TestStore_BootstrapRestoresSession(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	require.NoError(t, repo.Save("opaque-token", adminUser))

	store := session.New(repo, nil)
	require.NoError(t, store.Bootstrap(context.Background()))

	state := store.Snapshot()
	require.False(t, state.Loading)
	require.NotNil(t, state.User)
	require.Equal(t, "u1", state.User.ID)
	require.True(t, state.Permissions.CanDelete)
	require.True(t, store.IsAdmin())
}

func TestStore_BootstrapExpiredJWT(t *testing.T) {
	t.Parallel()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	repo := newRepo(t)
	require.NoError(t, repo.Save(token, adminUser))

	store := session.New(repo, nil)
	require.NoError(t, store.Bootstrap(context.Background()))

	require.Nil(t, store.Snapshot().User)

	stored, err := repo.Token()
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestStore_BootstrapValidJWT(t *testing.T) {
	t.Parallel()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	repo := newRepo(t)
	require.NoError(t, repo.Save(token, adminUser))

	store := session.New(repo, nil)
	require.NoError(t, store.Bootstrap(context.Background()))

	require.NotNil(t, store.Snapshot().User)
}

func TestStore_LoginWritesStorageThenState(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthClient(ctrl)
	repo := newRepo(t)

	auth.EXPECT().Login(gomock.Any(), "a@b.c", "pw").Return(gmao.AuthResponse{
		AccessToken: "T",
		User:        adminUser,
	}, nil)

	store := session.New(repo, auth)
	require.NoError(t, store.Bootstrap(context.Background()))

	user, err := store.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)

	// storage and in-memory state are coherent
	token, storedUser, ok, err := repo.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "T", token)
	require.Equal(t, adminUser, storedUser)

	state := store.Snapshot()
	require.Equal(t, "u1", state.User.ID)
	require.True(t, state.Permissions.CanDelete)
}

func TestStore_LoginFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthClient(ctrl)
	repo := newRepo(t)

	auth.EXPECT().Login(gomock.Any(), "a@b.c", "wrong").
		Return(gmao.AuthResponse{}, entity.NewAPIError(entity.KindAuthRejected, 401, "Email ou mot de passe incorrect"))

	store := session.New(repo, auth)
	require.NoError(t, store.Bootstrap(context.Background()))

	_, err := store.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)

	require.Nil(t, store.Snapshot().User)

	_, _, ok, err := repo.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_LoginReplacesPreviousSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthClient(ctrl)
	repo := newRepo(t)
	require.NoError(t, repo.Save("old", entity.User{ID: "u0", Role: entity.RoleTechnicien}))

	technicien := entity.User{ID: "u2", Email: "t@b.c", Role: entity.RoleTechnicien}

	auth.EXPECT().Login(gomock.Any(), "t@b.c", "pw").Return(gmao.AuthResponse{
		AccessToken: "T2",
		User:        technicien,
	}, nil)

	store := session.New(repo, auth)
	require.NoError(t, store.Bootstrap(context.Background()))

	_, err := store.Login(context.Background(), "t@b.c", "pw")
	require.NoError(t, err)

	// permissions were replaced along with the user, not patched
	state := store.Snapshot()
	require.Equal(t, "u2", state.User.ID)
	require.True(t, state.Permissions.CanCreate)
	require.True(t, state.Permissions.CanModify)
	require.True(t, state.Permissions.CanExport)
	require.False(t, state.Permissions.CanDelete)
	require.False(t, state.Permissions.CanManageUsers)
	require.True(t, store.IsTechnicien())
}

func TestStore_RegisterPendingDoesNotMutate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthClient(ctrl)
	repo := newRepo(t)

	req := gmao.RegisterRequest{Email: "a@b.c", Password: "pw", Nom: "N", Prenom: "P"}

	auth.EXPECT().Register(gomock.Any(), req).Return(gmao.AuthResponse{
		PendingApproval: true,
		Message:         "Compte en attente de validation",
	}, nil)

	store := session.New(repo, auth)
	require.NoError(t, store.Bootstrap(context.Background()))

	user, pending, err := store.Register(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, pending)
	require.Equal(t, "Compte en attente de validation", pending.Message)
	require.Empty(t, user.ID)

	require.Nil(t, store.Snapshot().User)

	_, _, ok, err := repo.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_RegisterImmediateActivation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthClient(ctrl)
	repo := newRepo(t)

	req := gmao.RegisterRequest{Email: "a@b.c", Password: "pw", Nom: "N", Prenom: "P"}

	newUser := entity.User{ID: "u3", Email: "a@b.c", Role: entity.RoleTechnicien}

	auth.EXPECT().Register(gomock.Any(), req).Return(gmao.AuthResponse{
		AccessToken: "T3",
		User:        newUser,
	}, nil)

	store := session.New(repo, auth)
	require.NoError(t, store.Bootstrap(context.Background()))

	user, pending, err := store.Register(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, pending)
	require.Equal(t, "u3", user.ID)

	token, _, ok, err := repo.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "T3", token)
	require.True(t, store.IsAuthenticated())
}

func TestStore_LogoutIdempotent(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	require.NoError(t, repo.Save("T", adminUser))

	store := session.New(repo, nil)
	require.NoError(t, store.Bootstrap(context.Background()))
	require.True(t, store.IsAuthenticated())

	require.NoError(t, store.Logout())
	require.False(t, store.IsAuthenticated())

	require.NoError(t, store.Logout())
	require.False(t, store.IsAuthenticated())

	_, _, ok, err := repo.Load()
	require.NoError(t, err)
	require.False(t, ok)

	state := store.Snapshot()
	require.Equal(t, entity.RoleInvite, state.Permissions.Role)
	require.False(t, state.Permissions.CanCreate)
}

func TestStore_InvalidateResetsState(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	require.NoError(t, repo.Save("T", adminUser))

	store := session.New(repo, nil)
	require.NoError(t, store.Bootstrap(context.Background()))
	require.True(t, store.IsAdmin())

	// the transport swept storage on a 401, then fired the hook
	require.NoError(t, repo.Clear())
	store.Invalidate()

	state := store.Snapshot()
	require.Nil(t, state.User)
	require.False(t, state.Permissions.CanCreate)
}

func TestStore_SubscribeObservesChanges(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthClient(ctrl)
	repo := newRepo(t)

	auth.EXPECT().Login(gomock.Any(), "a@b.c", "pw").Return(gmao.AuthResponse{
		AccessToken: "T",
		User:        adminUser,
	}, nil)

	store := session.New(repo, auth)

	sub := store.Subscribe()

	require.NoError(t, store.Bootstrap(context.Background()))

	state := <-sub
	require.False(t, state.Loading)
	require.Nil(t, state.User)

	_, err := store.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	state = <-sub
	require.NotNil(t, state.User)
	require.Equal(t, "u1", state.User.ID)
}

func TestStore_StorageErrorSurfacesButLoadingEnds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)

	storage.EXPECT().Load().Return("", entity.User{}, false, context.DeadlineExceeded)

	store := session.New(storage, nil)

	err := store.Bootstrap(context.Background())
	require.Error(t, err)

	// loading still flips so the UI can leave the placeholder
	require.False(t, store.Snapshot().Loading)
}
