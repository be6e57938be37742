// Package classdispatch provides single dispatch on classes.
//
// Where ordinary single dispatch selects a handler by the type of its first
// argument, a Dispatcher takes the class itself (a reflect.Type) and selects
// the handler registered for its most specific ancestor. Ancestors are the
// struct types a class embeds, ordered by C3 linearization; every class ends
// at the universal base, where the default handler lives.
//
//	type Spam struct{}
//	type Eggs struct{ Spam }
//
//	d, _ := classdispatch.New[string](func(c classdispatch.Class[Spam]) string { return "spam" })
//	_, _ = d.Register(func(c classdispatch.Class[Eggs]) string { return "eggs" })
//
//	d.Call(classdispatch.ClassOf[Eggs]()) // "eggs", nil
//
// Handlers name their class through the first parameter, Class[T] or
// *Class[T], so they can be registered without repeating T. A handler may
// instead be registered under an explicit class, in which case its first
// parameter can also be a plain reflect.Type.
package classdispatch
