package url

import "net/url"

type MutationFunc func(u *url.URL)

func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	mutated := *u
	for _, fn := range funcs {
		fn(&mutated)
	}

	return &mutated
}

func WithPath(path string) MutationFunc {
	return func(u *url.URL) {
		u.Path = u.JoinPath(path).Path
		u.RawQuery = ""
	}
}

func WithValues(pairs ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for i := 0; i+1 < len(pairs); i += 2 {
			query.Set(pairs[i], pairs[i+1])
		}

		u.RawQuery = query.Encode()
	}
}

func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}

func WithoutValues(keys ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for _, k := range keys {
			query.Del(k)
		}

		u.RawQuery = query.Encode()
	}
}
