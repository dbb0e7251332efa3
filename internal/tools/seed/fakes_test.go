package seed

import "context"

// fakeSeeder satisfies seeder with an injectable seed function.
type fakeSeeder struct {
	name  string
	seed  func(context.Context) error
	calls int
}

func (f *fakeSeeder) Name() string { return f.name }

func (f *fakeSeeder) Seed(ctx context.Context) error {
	f.calls++
	if f.seed != nil {
		return f.seed(ctx)
	}
	return nil
}

func newRunnerWithSeeders(cfg Config, seeders ...seeder) *Runner {
	r := New(nil, cfg)
	r.seeders = seeders
	return r
}
