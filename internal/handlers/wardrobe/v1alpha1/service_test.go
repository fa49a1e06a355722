package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
	"github.com/KirkDiggler/rpg-apparel/internal/handlers/wardrobe/v1alpha1"
	"github.com/KirkDiggler/rpg-apparel/internal/orchestrators/wardrobe"
	"github.com/KirkDiggler/rpg-apparel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-apparel/internal/repositories/placement"
	"github.com/KirkDiggler/rpg-apparel/internal/testutils"
)

func startWardrobeServer(t *testing.T) *v1alpha1.Client {
	t.Helper()

	redisClient, _ := testutils.CreateTestRedisClient(t)
	repo, err := placement.NewRedis(&placement.RedisConfig{Client: redisClient})
	require.NoError(t, err)

	svc, err := wardrobe.NewOrchestrator(&wardrobe.Config{
		PlacementRepo: repo,
		Clock:         &clock.Fixed{T: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{WardrobeService: svc})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterWardrobeServiceServer(srv, handler)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1alpha1.NewClient(conn)
}

func call(t *testing.T, c *v1alpha1.Client, method string, fields map[string]any) (*structpb.Struct, error) {
	t.Helper()

	req, err := structpb.NewStruct(fields)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Call(ctx, method, req)
}

func TestWardrobeService_EquipSwapDequip(t *testing.T) {
	c := startWardrobeServer(t)

	// Nothing worn yet
	resp, err := call(t, c, v1alpha1.MethodGetPlacement, map[string]any{v1alpha1.FieldCharacterID: "char_1"})
	require.NoError(t, err)
	assert.Empty(t, resp.GetFields()[v1alpha1.FieldPlacement].GetStructValue().GetFields())

	resp, err = call(t, c, v1alpha1.MethodEquip, map[string]any{
		v1alpha1.FieldCharacterID: "char_1",
		v1alpha1.FieldItemID:      apparel.IDFootwraps,
	})
	require.NoError(t, err)
	assert.NotContains(t, resp.GetFields(), v1alpha1.FieldDisplaced)

	resp, err = call(t, c, v1alpha1.MethodEquip, map[string]any{
		v1alpha1.FieldCharacterID: "char_1",
		v1alpha1.FieldItemID:      apparel.IDImperialLightBoots,
	})
	require.NoError(t, err)
	displaced := resp.GetFields()[v1alpha1.FieldDisplaced].GetListValue().GetValues()
	require.Len(t, displaced, 1)
	assert.Equal(t, apparel.IDFootwraps, displaced[0].GetStructValue().GetFields()["id"].GetStringValue())

	// Another character is unaffected
	resp, err = call(t, c, v1alpha1.MethodGetPlacement, map[string]any{v1alpha1.FieldCharacterID: "char_2"})
	require.NoError(t, err)
	assert.Empty(t, resp.GetFields()[v1alpha1.FieldPlacement].GetStructValue().GetFields())

	resp, err = call(t, c, v1alpha1.MethodGetPlacement, map[string]any{v1alpha1.FieldCharacterID: "char_1"})
	require.NoError(t, err)
	feet := resp.GetFields()[v1alpha1.FieldPlacement].GetStructValue().GetFields()["feet"]
	assert.Equal(t, apparel.IDImperialLightBoots, feet.GetStructValue().GetFields()["id"].GetStringValue())
	assert.Equal(t, "2026-10-19T00:00:00Z", resp.GetFields()[v1alpha1.FieldUpdatedAt].GetStringValue())

	resp, err = call(t, c, v1alpha1.MethodDequip, map[string]any{
		v1alpha1.FieldCharacterID: "char_1",
		v1alpha1.FieldPosition:    "feet",
	})
	require.NoError(t, err)
	require.Len(t, resp.GetFields()[v1alpha1.FieldDisplaced].GetListValue().GetValues(), 1)

	resp, err = call(t, c, v1alpha1.MethodDequip, map[string]any{
		v1alpha1.FieldCharacterID: "char_1",
		v1alpha1.FieldPosition:    "feet",
	})
	require.NoError(t, err)
	assert.NotContains(t, resp.GetFields(), v1alpha1.FieldDisplaced)
}

func TestWardrobeService_ErrorCodes(t *testing.T) {
	c := startWardrobeServer(t)

	_, err := call(t, c, v1alpha1.MethodEquip, map[string]any{
		v1alpha1.FieldCharacterID: "char_1",
		v1alpha1.FieldItemID:      "glass_helmet",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = call(t, c, "Unequip", map[string]any{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestWardrobeService_ListCatalog(t *testing.T) {
	c := startWardrobeServer(t)

	resp, err := call(t, c, v1alpha1.MethodListCatalog, map[string]any{v1alpha1.FieldKind: "armor"})
	require.NoError(t, err)
	assert.Len(t, resp.GetFields()[v1alpha1.FieldItems].GetListValue().GetValues(), 5)
}
