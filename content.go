package main

// Site copy that lives outside the project catalog.
var AboutMe = `I build backend services and terminal tools, mostly in Go, and I'm
always curious about how things work behind the scenes. Most of my projects
start with a simple idea and turn into a chance to learn something new,
whether that's a storage engine, a streaming pipeline, or just a nicer way
to read email. When I'm not coding you'll find me bouldering or out on the
trails with a camera.`
