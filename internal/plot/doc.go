// Package plot строит диаграмму «большая полуось – эксцентриситет».
//
//   - layout.go — чистое вычисление того, что попадёт на график
//     (точки, отрезки границ групп, линии планет, подписи)
//   - render.go — отрисовка Layout через go-chart в PNG или SVG
//
// Layout не зависит от go-chart и покрыт тестами отдельно.
package plot
