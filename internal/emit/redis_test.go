package emit

import (
	"testing"

	"github.com/fiaro/fixtures/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSink_Key(t *testing.T) {
	assert.Equal(t, "fixtures:test_game.json", NewRedisSink(nil, "").Key("test_game.json"))
	assert.Equal(t, "dev:test_game.json", NewRedisSink(nil, "dev:").Key("test_game.json"))
}

func TestRedisSink_Write(t *testing.T) {
	ctx, st := suite.New(t)

	sink := NewRedisSink(st.Redis, "")
	emitter := NewEmitter(newTestLogger(), sink)

	// When: two fixtures are emitted
	err := emitter.Emit(ctx, []Artifact{
		{Name: "test_lobby.json", Text: []byte(`{"player_key": "asdhja67h32"}`)},
		{Name: "test_lobby_post.json", Text: []byte(`{}`)},
	})
	require.NoError(t, err)

	// Then: both are stored verbatim under their keys
	val, err := st.Redis.Get(ctx, "fixtures:test_lobby.json").Result()
	require.NoError(t, err)
	assert.Equal(t, `{"player_key": "asdhja67h32"}`, val)

	val, err = st.Redis.Get(ctx, "fixtures:test_lobby_post.json").Result()
	require.NoError(t, err)
	assert.Equal(t, `{}`, val)
}

func TestConnectRedis(t *testing.T) {
	ctx, st := suite.New(t)

	rdb, err := ConnectRedis(ctx, st.RedisAddr, 0)
	require.NoError(t, err)
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(ctx).Err())
}
