package ecdsa

import (
	"context"
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"

	ecurve "github.com/ArdentHQ/arkvault-sub013"
)

// DerivePublicKeys computes d·G for every scalar in parallel. The result is
// in the order of scalars. The first invalid scalar or a cancelled context
// aborts the batch.
func DerivePublicKeys(ctx context.Context, c *ecurve.Curve, scalars []*big.Int) ([]*PublicKey, error) {
	keys := make([]*PublicKey, len(scalars))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range scalars {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			priv, err := NewPrivateKey(c, d)
			if err != nil {
				return fmt.Errorf("scalar %d: %w", i, err)
			}
			keys[i] = priv.Public()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}
