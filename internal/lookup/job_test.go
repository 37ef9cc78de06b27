package lookup_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

func TestJobArgs(t *testing.T) {
	id := domain.LookupID(uuid.New())
	args := lookup.NewJobArgs(id, 4)

	require.Equal(t, "ResolveCodeJob", args.Kind())
	opts := args.InsertOpts()
	require.Equal(t, 4, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)

	b, err := json.Marshal(args)
	require.NoError(t, err)
	require.JSONEq(t, `{"lookupId":"`+id.String()+`"}`, string(b))

	var back lookup.JobArgs
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, id, back.LookupID)
}
